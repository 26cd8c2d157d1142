package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/library"
	"github.com/arthur-debert/gameshift/pkg/mover"
)

// Renderer turns gameshift data into printable text
type Renderer interface {
	RenderLibrary(groups []library.Group) string
	RenderEntry(entry library.Entry) string
	RenderDestinations(destinations []string) string
	RenderResult(result mover.Result) string
	RenderSummary(summary mover.Summary) string
	RenderError(err error) string
}

// NewRenderer returns a styled renderer, or a plain one when plain is set
func NewRenderer(plain bool) Renderer {
	if plain {
		return NewPlainRenderer()
	}
	return NewTerminalRenderer()
}

// TerminalRenderer renders with lipgloss styles
type TerminalRenderer struct {
	markupRenderer
}

// NewTerminalRenderer creates a styled renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{markupRenderer{plain: false}}
}

// PlainRenderer renders the same text with no escape codes
type PlainRenderer struct {
	markupRenderer
}

// NewPlainRenderer creates a plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{markupRenderer{plain: true}}
}

// markupRenderer builds markup and lets Render style or strip it
type markupRenderer struct {
	plain bool
}

func (r markupRenderer) render(lines ...string) string {
	return Render(strings.Join(lines, "\n"), r.plain)
}

func (r markupRenderer) RenderLibrary(groups []library.Group) string {
	if len(groups) == 0 {
		return r.render(Tag("muted", "No installed games found in the catalog."))
	}

	lines := []string{Tag("title", "GAMES BY INSTALL LOCATION")}
	for i, g := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, Tag("group", g.BaseDir))
		for _, e := range g.Entries {
			lines = append(lines, fmt.Sprintf("  %s %2d. %s %s",
				Tag("index", fmt.Sprintf("[%d]", e.Global)),
				e.Local,
				Tag("id", e.Record.ID),
				Tag("game", e.Record.Title)))
		}
	}
	return r.render(lines...)
}

func (r markupRenderer) RenderEntry(e library.Entry) string {
	return r.render(
		fmt.Sprintf("Game ID:          %s", Tag("id", e.Record.ID)),
		fmt.Sprintf("Game:             %s", Tag("game", e.Record.Title)),
		fmt.Sprintf("Current location: %s", Tag("path", e.Record.InstallPath)),
	)
}

func (r markupRenderer) RenderDestinations(destinations []string) string {
	if len(destinations) == 0 {
		return r.render(Tag("warning", "No destinations configured."))
	}
	lines := make([]string, 0, len(destinations))
	for i, d := range destinations {
		lines = append(lines, fmt.Sprintf("%s %s", Tag("index", fmt.Sprintf("%d.", i+1)), Tag("path", d)))
	}
	return r.render(lines...)
}

func planLines(p mover.Plan) []string {
	lines := []string{
		fmt.Sprintf("%s %s", Tag("game", p.Record.Title), Tag("id", "("+p.Record.ID+")")),
		fmt.Sprintf("  install: %s -> %s", Tag("path", p.SourceInstall), Tag("path", p.DestInstall)),
	}
	if p.AuxPresent {
		lines = append(lines, fmt.Sprintf("  data:    %s -> %s", Tag("path", p.SourceAux), Tag("path", p.DestAux)))
	} else {
		lines = append(lines, fmt.Sprintf("  data:    %s", Tag("muted", "none at "+p.SourceAux)))
	}
	if p.DestInstallExists || p.DestAuxExists {
		lines = append(lines, "  "+Tag("warning", "destination already exists and will be overwritten"))
	}
	return lines
}

func (r markupRenderer) RenderResult(res mover.Result) string {
	title := Tag("game", res.Plan.Record.Title)
	var lines []string

	switch res.Outcome {
	case mover.OutcomeMoved:
		lines = append(lines, fmt.Sprintf("%s %s moved to %s",
			Tag("success", "✓"), title, Tag("path", res.Plan.DestInstall)))
	case mover.OutcomeAlreadyInPlace:
		lines = append(lines, fmt.Sprintf("%s %s is already in %s, nothing to do",
			Tag("info", "•"), title, Tag("path", res.Plan.Record.BaseDir())))
	case mover.OutcomePlanned:
		lines = append(lines, fmt.Sprintf("%s dry run, nothing moved", Tag("info", "•")))
		lines = append(lines, planLines(res.Plan)...)
	case mover.OutcomeRolledBack:
		lines = append(lines, fmt.Sprintf("%s %s was not moved, the copy was removed and the original is untouched",
			Tag("error", "✗"), title))
		lines = append(lines, r.errorLines(res.Err)...)
		lines = append(lines, r.verificationLines(res.Verification)...)
	default:
		lines = append(lines, fmt.Sprintf("%s %s was not moved", Tag("error", "✗"), title))
		lines = append(lines, r.errorLines(res.Err)...)
	}

	if res.AuxMissing && res.Outcome != mover.OutcomeAlreadyInPlace && res.Outcome != mover.OutcomeRejected {
		lines = append(lines, "  "+Tag("warning", "no installer data directory found, only the install tree was handled"))
	}
	for _, cerr := range res.CleanupErrs {
		lines = append(lines, "  "+Tag("warning", "! "+cerr.Error()))
	}
	return r.render(lines...)
}

func (r markupRenderer) verificationLines(v mover.Verification) []string {
	if v.Empty() {
		return nil
	}
	sets := []struct {
		label string
		items []string
	}{
		{"install, source only", v.Install.LeftOnly},
		{"install, copy only", v.Install.RightOnly},
		{"data, source only", v.Aux.LeftOnly},
		{"data, copy only", v.Aux.RightOnly},
	}
	lines := []string{"  mismatch:"}
	for _, s := range sets {
		if len(s.items) == 0 {
			lines = append(lines, fmt.Sprintf("    %-22s %s", s.label+":", Tag("muted", "none")))
			continue
		}
		lines = append(lines, fmt.Sprintf("    %-22s %s", s.label+":", strings.Join(s.items, ", ")))
	}
	return lines
}

func (r markupRenderer) errorLines(err error) []string {
	if err == nil {
		return nil
	}
	line := "  " + Tag("error", err.Error())
	if details := errors.FormatDetails(err); details != "" {
		line += " " + Tag("muted", "("+details+")")
	}
	return []string{line}
}

func (r markupRenderer) RenderSummary(s mover.Summary) string {
	parts := []string{Tag("success", fmt.Sprintf("%d moved", s.Moved))}
	if s.InPlace > 0 {
		parts = append(parts, Tag("info", fmt.Sprintf("%d already in place", s.InPlace)))
	}
	if s.Planned > 0 {
		parts = append(parts, Tag("info", fmt.Sprintf("%d planned", s.Planned)))
	}
	if s.Failed > 0 {
		parts = append(parts, Tag("error", fmt.Sprintf("%d failed", s.Failed)))
	}
	if s.Leftovers > 0 {
		parts = append(parts, Tag("warning", fmt.Sprintf("%d left behind", s.Leftovers)))
	}
	return r.render(strings.Join(parts, ", "))
}

func (r markupRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	lines := []string{Tag("error", "ERROR: "+err.Error())}
	if details := errors.FormatDetails(err); details != "" {
		lines = append(lines, "  "+Tag("muted", details))
	}
	return r.render(lines...)
}
