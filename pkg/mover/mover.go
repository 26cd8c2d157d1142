package mover

import (
	"time"

	"github.com/arthur-debert/gameshift/pkg/compare"
	"github.com/arthur-debert/gameshift/pkg/copier"
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/paths"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Options configures a Mover
type Options struct {
	FS         types.FS
	Catalog    CatalogWriter
	AuxDirName string
	// DryRun resolves plans without touching the filesystem or the catalog
	DryRun   bool
	Observer Observer
}

// Mover runs moves one at a time
type Mover struct {
	fs         types.FS
	catalog    CatalogWriter
	auxDirName string
	dryRun     bool
	observer   Observer
	logger     zerolog.Logger
}

// New creates a Mover. FS and Catalog are required.
func New(opts Options) *Mover {
	observer := opts.Observer
	if observer == nil {
		observer = NopObserver{}
	}
	auxDirName := opts.AuxDirName
	if auxDirName == "" {
		auxDirName = types.DefaultAuxDirName
	}
	return &Mover{
		fs:         opts.FS,
		catalog:    opts.Catalog,
		auxDirName: auxDirName,
		dryRun:     opts.DryRun,
		observer:   observer,
		logger:     logging.GetLogger("mover"),
	}
}

// Plan resolves source and destination paths for moving rec under desiredBaseDir.
// It only reads the filesystem.
func (m *Mover) Plan(rec types.InstallRecord, desiredBaseDir string) (Plan, error) {
	if rec.InstallPath == "" {
		return Plan{Record: rec}, errors.New(errors.ErrInvalidInput, "record has no install path").
			WithDetail("id", rec.ID)
	}
	base, err := paths.Normalize(desiredBaseDir)
	if err != nil {
		return Plan{Record: rec}, err
	}

	plan := Plan{
		Record:        rec,
		SourceInstall: rec.InstallPath,
		SourceAux:     rec.AuxDataPath(m.auxDirName),
		DestInstall:   rec.InstallPathUnder(base),
	}
	plan.DestAux = types.AuxDataPath(plan.DestInstall, m.auxDirName)
	plan.InPlace = paths.Same(plan.SourceInstall, plan.DestInstall)
	if plan.InPlace {
		return plan, nil
	}

	// A rollback removes both destinations, so neither may share a subtree
	// with either source.
	for _, src := range []string{plan.SourceInstall, plan.SourceAux} {
		for _, dst := range []string{plan.DestInstall, plan.DestAux} {
			if paths.Within(src, dst) || paths.Within(dst, src) {
				return plan, errors.New(errors.ErrInvalidInput, "destination overlaps a source directory").
					WithDetail("source", src).
					WithDetail("destination", dst)
			}
		}
	}

	info, err := m.fs.Stat(plan.SourceInstall)
	if err != nil {
		return plan, errors.Wrap(err, errors.ErrCopy, "install directory is not readable").
			WithDetail("source", plan.SourceInstall)
	}
	if !info.IsDir() {
		return plan, errors.New(errors.ErrCopy, "install path is not a directory").
			WithDetail("source", plan.SourceInstall)
	}

	plan.AuxPresent = m.isDir(plan.SourceAux)
	plan.DestInstallExists = m.exists(plan.DestInstall)
	plan.DestAuxExists = m.exists(plan.DestAux)
	return plan, nil
}

// Move relocates rec under desiredBaseDir. It never returns an error directly:
// everything that happened is in the Result.
func (m *Mover) Move(rec types.InstallRecord, desiredBaseDir string) (result Result) {
	start := time.Now()
	result = Result{
		OperationID: uuid.NewString(),
		State:       StateIdle,
	}
	logger := m.logger.With().
		Str("op", result.OperationID).
		Str("id", rec.ID).
		Str("title", rec.Title).
		Logger()
	done := logging.LogOperationStart(logger, "move")
	defer done()
	defer func() { result.Duration = time.Since(start) }()

	plan, err := m.Plan(rec, desiredBaseDir)
	result.Plan = plan
	if err != nil {
		logger.Error().Err(err).Msg("Move rejected")
		result.Err = err
		result.Outcome = OutcomeRejected
		m.setState(&result, StateFailed)
		return result
	}

	if plan.InPlace {
		logger.Info().Str("path", plan.SourceInstall).Msg("Already in the requested location")
		result.Outcome = OutcomeAlreadyInPlace
		m.setState(&result, StateDone)
		return result
	}

	result.AuxMissing = !plan.AuxPresent
	if result.AuxMissing {
		logger.Warn().Str("path", plan.SourceAux).Msg("No installer data directory, moving install tree only")
	}
	if plan.DestInstallExists || plan.DestAuxExists {
		logger.Warn().
			Bool("install", plan.DestInstallExists).
			Bool("data", plan.DestAuxExists).
			Msg("Destination already exists and will be overwritten")
	}

	if m.dryRun {
		logger.Info().
			Str("from", plan.SourceInstall).
			Str("to", plan.DestInstall).
			Msg("Dry run, nothing moved")
		result.Outcome = OutcomePlanned
		m.setState(&result, StateDone)
		return result
	}

	m.setState(&result, StateCopying)
	if err := m.copyTrees(plan); err != nil {
		logger.Error().Err(err).Msg("Copy failed")
		return m.rollback(result, err, logger)
	}

	m.setState(&result, StateVerifying)
	verification, err := m.verify(plan)
	result.Verification = verification
	if err != nil {
		logger.Error().Err(err).Msg("Verification failed")
		return m.rollback(result, err, logger)
	}

	m.setState(&result, StateCommitting)
	if err := m.catalog.UpdatePath(rec.ID, plan.DestInstall); err != nil {
		logger.Error().Err(err).Msg("Catalog update failed")
		return m.rollback(result, err, logger)
	}
	logger.Info().Str("path", plan.DestInstall).Msg("Catalog updated")

	result.CleanupErrs = m.removeSources(plan)
	for _, cerr := range result.CleanupErrs {
		logger.Warn().Err(cerr).Msg("Source left behind")
	}

	result.Outcome = OutcomeMoved
	m.setState(&result, StateDone)
	logger.Info().
		Str("from", plan.SourceInstall).
		Str("to", plan.DestInstall).
		Msg("Move complete")
	return result
}

// MoveAll moves every record in order. A failure does not stop the rest.
// onResult, when set, is called with each result before the next move starts.
func (m *Mover) MoveAll(records []types.InstallRecord, desiredBaseDir string, onResult func(Result)) []Result {
	results := make([]Result, 0, len(records))
	for _, rec := range records {
		result := m.Move(rec, desiredBaseDir)
		if onResult != nil {
			onResult(result)
		}
		results = append(results, result)
	}
	return results
}

func (m *Mover) copyTrees(plan Plan) error {
	rec := plan.Record
	err := copier.CopyTree(m.fs, plan.SourceInstall, plan.DestInstall, func(p copier.Progress) {
		m.observer.OnCopyProgress(rec, TreeInstall, p)
	})
	if err != nil {
		return err
	}
	if !plan.AuxPresent {
		return nil
	}
	return copier.CopyTree(m.fs, plan.SourceAux, plan.DestAux, func(p copier.Progress) {
		m.observer.OnCopyProgress(rec, TreeAux, p)
	})
}

func (m *Mover) verify(plan Plan) (Verification, error) {
	var v Verification
	var err error

	v.Install, err = compare.DiffTrees(m.fs, plan.SourceInstall, plan.DestInstall)
	if err != nil {
		return v, errors.Wrap(err, errors.ErrInternal, "cannot compare install trees")
	}
	if plan.AuxPresent {
		v.Aux, err = compare.DiffTrees(m.fs, plan.SourceAux, plan.DestAux)
		if err != nil {
			return v, errors.Wrap(err, errors.ErrInternal, "cannot compare data trees")
		}
	}

	if v.Empty() {
		return v, nil
	}
	return v, errors.New(errors.ErrVerificationMismatch, "copy does not match the source").
		WithDetail("install_source_only", len(v.Install.LeftOnly)).
		WithDetail("install_dest_only", len(v.Install.RightOnly)).
		WithDetail("data_source_only", len(v.Aux.LeftOnly)).
		WithDetail("data_dest_only", len(v.Aux.RightOnly))
}

// rollback removes both destination paths. The source is never touched.
func (m *Mover) rollback(result Result, cause error, logger zerolog.Logger) Result {
	m.setState(&result, StateRollingBack)
	result.Err = cause
	result.Outcome = OutcomeRolledBack

	plan := result.Plan
	for _, path := range []string{plan.DestInstall, plan.DestAux} {
		if err := m.fs.RemoveAll(path); err != nil {
			rerr := errors.Wrap(err, errors.ErrRollback, "cannot remove partial copy").
				WithDetail("path", path)
			logger.Error().Err(rerr).Msg("Rollback incomplete")
			result.CleanupErrs = append(result.CleanupErrs, rerr)
		}
	}
	logger.Warn().Str("path", plan.DestInstall).Msg("Rolled back, source untouched")

	m.setState(&result, StateFailed)
	return result
}

func (m *Mover) removeSources(plan Plan) []error {
	targets := []string{plan.SourceInstall}
	if plan.AuxPresent {
		targets = append(targets, plan.SourceAux)
	}

	var errs []error
	for _, path := range targets {
		if err := m.fs.RemoveAll(path); err != nil {
			errs = append(errs, errors.Wrapf(err, errors.ErrSourceCleanup,
				"moved, but could not delete %s", path).
				WithDetail("path", path))
		}
	}
	return errs
}

func (m *Mover) setState(result *Result, state State) {
	result.State = state
	m.observer.OnState(result.Plan.Record, state)
}

func (m *Mover) exists(path string) bool {
	_, err := m.fs.Stat(path)
	return err == nil
}

func (m *Mover) isDir(path string) bool {
	info, err := m.fs.Stat(path)
	return err == nil && info.IsDir()
}

// Summary counts outcomes across a batch
type Summary struct {
	Moved     int
	InPlace   int
	Planned   int
	Failed    int
	Leftovers int
}

// Summarize tallies a batch of results
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Outcome {
		case OutcomeMoved:
			s.Moved++
		case OutcomeAlreadyInPlace:
			s.InPlace++
		case OutcomePlanned:
			s.Planned++
		default:
			s.Failed++
		}
		s.Leftovers += len(r.CleanupErrs)
	}
	return s
}
