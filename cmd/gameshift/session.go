package gameshift

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gameshift/pkg/catalog"
	"github.com/arthur-debert/gameshift/pkg/config"
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/filesystem"
	"github.com/arthur-debert/gameshift/pkg/library"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/mover"
	"github.com/arthur-debert/gameshift/pkg/style"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalOptions holds the root persistent flags
type globalOptions struct {
	verbosity   int
	dryRun      bool
	catalogPath string
	configFile  string
}

// session is what a command needs once flags are parsed
type session struct {
	cfg      *config.Config
	store    *catalog.Store
	fs       types.FS
	renderer style.Renderer
	out      io.Writer
	tty      bool
	dryRun   bool
	logger   zerolog.Logger
}

// newSession loads configuration and prepares the catalog. The returned
// session can always report errors, even when err is set.
func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	out := cmd.OutOrStdout()
	s := &session{
		out:      out,
		tty:      isTerminal(out),
		renderer: style.NewRenderer(plainOutput(out)),
		dryRun:   opts.dryRun,
		logger:   logging.GetLogger("cmd." + cmd.Name()),
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return s, err
	}
	s.cfg = cfg
	s.fs = filesystem.NewOS()
	s.store = catalog.New(catalog.Options{
		Path:         cfg.Catalog.Path,
		BackupSuffix: cfg.Catalog.BackupSuffix,
		Schema: catalog.Schema{
			Table:       cfg.Catalog.Table,
			IDColumn:    cfg.Catalog.IDColumn,
			TitleColumn: cfg.Catalog.TitleColumn,
			PathColumn:  cfg.Catalog.PathColumn,
		},
	})
	s.logger.Debug().Str("catalog", cfg.Catalog.Path).Bool("dryRun", s.dryRun).Msg("Session ready")
	return s, nil
}

// report prints err for the operator. Failures are reported, not returned,
// so the process still exits 0.
func (s *session) report(err error) error {
	s.logger.Error().
		Err(err).
		Str("code", string(errors.GetErrorCode(err))).
		Msg("Command failed")
	s.println(s.renderer.RenderError(err))
	return nil
}

func (s *session) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *session) groups() ([]library.Group, error) {
	records, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return library.GroupRecords(records), nil
}

func (s *session) newMover() *mover.Mover {
	return mover.New(mover.Options{
		FS:         s.fs,
		Catalog:    s.store,
		AuxDirName: s.cfg.Layout.AuxDirName,
		DryRun:     s.dryRun,
		Observer:   newProgressObserver(s.out, s.tty),
	})
}

// moveOne runs and reports a single move
func (s *session) moveOne(rec types.InstallRecord, base string) mover.Result {
	if s.dryRun {
		s.println(MsgDryRunNotice)
	}
	result := s.newMover().Move(rec, base)
	s.println(s.renderer.RenderResult(result))
	return result
}

// moveAll runs and reports a batch, finishing with a summary line
func (s *session) moveAll(records []types.InstallRecord, base string) []mover.Result {
	if s.dryRun {
		s.println(MsgDryRunNotice)
	}
	results := s.newMover().MoveAll(records, base, func(r mover.Result) {
		s.println(s.renderer.RenderResult(r))
	})
	s.println(s.renderer.RenderSummary(mover.Summarize(results)))
	return results
}
