package gameshift

import (
	"fmt"
	"io"

	"github.com/arthur-debert/gameshift/pkg/copier"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/mover"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// logEvery is how many files pass between progress log lines off a terminal
const logEvery = 250

// newProgressObserver shows copy progress as a bar on a terminal and as
// log lines otherwise
func newProgressObserver(out io.Writer, tty bool) mover.Observer {
	logger := logging.GetLogger("progress")
	if tty {
		return &barObserver{out: out, logger: logger}
	}
	return &logObserver{logger: logger}
}

// barObserver drives one pterm progress bar per copied tree
type barObserver struct {
	out    io.Writer
	logger zerolog.Logger
	bar    *pterm.ProgressbarPrinter
}

func (o *barObserver) OnState(rec types.InstallRecord, state mover.State) {
	switch state {
	case mover.StateVerifying, mover.StateRollingBack, mover.StateDone, mover.StateFailed:
		o.stop()
	}
}

func (o *barObserver) OnCopyProgress(rec types.InstallRecord, tree mover.TreeKind, p copier.Progress) {
	if p.Done == 1 {
		o.stop()
		bar, err := pterm.DefaultProgressbar.
			WithTotal(p.Total).
			WithTitle(fmt.Sprintf("Copying %s (%s)", rec.Title, tree)).
			WithWriter(o.out).
			WithRemoveWhenDone(true).
			Start()
		if err != nil {
			o.logger.Debug().Err(err).Msg("Progress bar unavailable")
			return
		}
		o.bar = bar
	}
	if o.bar != nil {
		o.bar.Increment()
	}
}

func (o *barObserver) stop() {
	if o.bar == nil {
		return
	}
	if _, err := o.bar.Stop(); err != nil {
		o.logger.Debug().Err(err).Msg("Failed to stop progress bar")
	}
	o.bar = nil
}

// logObserver writes progress to the log
type logObserver struct {
	logger zerolog.Logger
}

func (o *logObserver) OnState(rec types.InstallRecord, state mover.State) {
	o.logger.Info().Str("id", rec.ID).Str("state", string(state)).Msg("Move state")
}

func (o *logObserver) OnCopyProgress(rec types.InstallRecord, tree mover.TreeKind, p copier.Progress) {
	if p.Done%logEvery != 0 && p.Done != p.Total {
		return
	}
	o.logger.Info().
		Str("id", rec.ID).
		Str("tree", string(tree)).
		Int("done", p.Done).
		Int("total", p.Total).
		Str("percent", fmt.Sprintf("%.0f%%", p.Percent())).
		Msg("Copying")
}
