package mover

import (
	"time"

	"github.com/arthur-debert/gameshift/pkg/compare"
	"github.com/arthur-debert/gameshift/pkg/copier"
	"github.com/arthur-debert/gameshift/pkg/types"
)

// State is a step of the move state machine
type State string

const (
	StateIdle        State = "idle"
	StateCopying     State = "copying"
	StateVerifying   State = "verifying"
	StateCommitting  State = "committing"
	StateRollingBack State = "rolling_back"
	StateDone        State = "done"
	StateFailed      State = "failed"
)

// Outcome summarises how a move ended
type Outcome string

const (
	// OutcomeMoved means the catalog now points at the new location
	OutcomeMoved Outcome = "moved"
	// OutcomeAlreadyInPlace means the record already lives in the target base dir
	OutcomeAlreadyInPlace Outcome = "already_in_place"
	// OutcomePlanned is a dry run that touched nothing
	OutcomePlanned Outcome = "planned"
	// OutcomeRolledBack means the destination was removed and the source kept
	OutcomeRolledBack Outcome = "rolled_back"
	// OutcomeRejected means the move was refused before anything was written
	OutcomeRejected Outcome = "rejected"
)

// TreeKind tells the install tree and the auxiliary data tree apart
type TreeKind string

const (
	TreeInstall TreeKind = "install"
	TreeAux     TreeKind = "data"
)

// CatalogWriter is the part of the catalog a move commits to
type CatalogWriter interface {
	UpdatePath(id, newPath string) error
}

// Observer receives move events. Implementations must not block for long:
// moves are synchronous and the observer runs on the moving goroutine.
type Observer interface {
	OnState(rec types.InstallRecord, state State)
	OnCopyProgress(rec types.InstallRecord, tree TreeKind, p copier.Progress)
}

// NopObserver ignores every event
type NopObserver struct{}

func (NopObserver) OnState(types.InstallRecord, State)                            {}
func (NopObserver) OnCopyProgress(types.InstallRecord, TreeKind, copier.Progress) {}

// Plan is the resolved set of paths for one move
type Plan struct {
	Record types.InstallRecord

	SourceInstall string
	DestInstall   string
	SourceAux     string
	DestAux       string

	// AuxPresent is false when the record has no auxiliary data directory
	AuxPresent bool
	// DestInstallExists / DestAuxExists flag destinations that are already
	// on disk; a rollback removes them as well
	DestInstallExists bool
	DestAuxExists     bool
	// InPlace means the destination is the current location
	InPlace bool
}

// Verification is the post-copy comparison of both trees
type Verification struct {
	Install compare.Diff
	Aux     compare.Diff
}

// Empty reports whether all four sets are empty
func (v Verification) Empty() bool {
	return v.Install.Empty() && v.Aux.Empty()
}

// Result describes one finished move
type Result struct {
	OperationID string
	Plan        Plan
	State       State
	Outcome     Outcome

	// AuxMissing is set when the source had no auxiliary data directory
	AuxMissing   bool
	Verification Verification

	// Err is why the move did not commit, nil when it did
	Err error
	// CleanupErrs are failures removing the source after commit or the
	// destination during rollback. They are reported, never retried.
	CleanupErrs []error

	Duration time.Duration
}

// Succeeded reports whether the catalog ends up pointing at the destination
func (r Result) Succeeded() bool {
	return r.State == StateDone && r.Err == nil
}
