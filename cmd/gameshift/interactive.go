package gameshift

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/library"
	"github.com/spf13/cobra"
)

// runInteractive lists the library, asks for a game (or "all") and a
// destination from the configured menu, then moves
func runInteractive(cmd *cobra.Command, opts *globalOptions) error {
	s, err := newSession(cmd, opts)
	if err != nil {
		return s.report(err)
	}
	s.println(MsgInteractiveNotice)

	groups, err := s.groups()
	if err != nil {
		return s.report(err)
	}
	s.println(s.renderer.RenderLibrary(groups))
	if len(library.Entries(groups)) == 0 {
		return nil
	}

	in := bufio.NewReader(cmd.InOrStdin())

	answer, err := prompt(s.out, in, MsgPromptGame)
	if err != nil {
		return s.report(err)
	}

	if strings.EqualFold(answer, "all") {
		dest, err := chooseDestination(s, in)
		if err != nil {
			return s.report(err)
		}
		s.moveAll(library.Records(groups), dest)
		return nil
	}

	entry, err := library.ParseIndex(groups, answer)
	if err != nil {
		return s.report(err)
	}
	s.println(MsgSelectedGame)
	s.println(s.renderer.RenderEntry(entry))

	dest, err := chooseDestination(s, in)
	if err != nil {
		return s.report(err)
	}
	s.moveOne(entry.Record, dest)
	return nil
}

// chooseDestination shows the destination menu and reads a 1-based choice
func chooseDestination(s *session, in *bufio.Reader) (string, error) {
	dests := s.cfg.Destinations
	if len(dests) == 0 {
		return "", errors.New(errors.ErrInvalidSelection, "no destinations configured")
	}

	s.println(MsgChooseDestination)
	s.println(s.renderer.RenderDestinations(dests))

	answer, err := prompt(s.out, in, fmt.Sprintf(MsgPromptDestination, len(dests)))
	if err != nil {
		return "", err
	}
	n, convErr := strconv.Atoi(answer)
	if convErr != nil {
		return "", errors.Wrapf(convErr, errors.ErrInvalidSelection, "%q is not a number", answer).
			WithDetail("input", answer)
	}
	if n < 1 || n > len(dests) {
		return "", errors.Newf(errors.ErrInvalidSelection, "choice %d is out of range 1-%d", n, len(dests)).
			WithDetail("input", answer)
	}
	return dests[n-1], nil
}

// prompt writes question and reads one trimmed line. A bare EOF with no
// input counts as no selection.
func prompt(out io.Writer, in *bufio.Reader, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, errors.ErrInvalidSelection, "no selection made")
	}
	return strings.TrimSpace(line), nil
}
