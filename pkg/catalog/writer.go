package catalog

import (
	"io"
	"os"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/dchest/safefile"
)

// UpdatePath points the record with the given id at newPath. A fresh backup
// of the catalog is taken first; without it the catalog is left untouched.
func (s *Store) UpdatePath(id, newPath string) error {
	return s.withBackup(func() error {
		db, err := s.open()
		if err != nil {
			return errors.Wrap(err, errors.ErrCatalogWrite, "cannot open catalog for writing").
				WithDetail("backup", s.BackupPath())
		}
		defer db.Close()

		res, err := db.Exec(s.schema.updatePath(), newPath, id)
		if err != nil {
			return errors.Wrapf(err, errors.ErrCatalogWrite, "failed to update install path for %s", id).
				WithDetail("backup", s.BackupPath())
		}
		n, err := res.RowsAffected()
		if err != nil {
			return errors.Wrapf(err, errors.ErrCatalogWrite, "failed to update install path for %s", id).
				WithDetail("backup", s.BackupPath())
		}
		if n == 0 {
			return errors.Newf(errors.ErrRecordNotFound, "game with ID %s not found", id).
				WithDetail("id", id)
		}

		s.logger.Info().Str("id", id).Str("installPath", newPath).Msg("Catalog updated")
		return nil
	})
}

// withBackup runs fn only after a verified backup of the catalog exists. A
// failure inside fn leaves the backup in place for manual recovery.
func (s *Store) withBackup(fn func() error) error {
	if err := s.Backup(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		s.logger.Error().Err(err).Str("backup", s.BackupPath()).Msg("Catalog write failed, backup kept")
		return err
	}
	return nil
}

// Backup copies the catalog file to BackupPath atomically, replacing any
// earlier backup, and checks the copy is complete.
func (s *Store) Backup() error {
	backupPath := s.BackupPath()
	fail := func(err error, msg string) error {
		return errors.Wrap(err, errors.ErrCatalogWrite, msg).
			WithDetail("path", s.path).
			WithDetail("backup", backupPath)
	}

	src, err := os.Open(s.path)
	if err != nil {
		return fail(err, "cannot read catalog for backup")
	}
	defer src.Close()

	srcInfo, err := src.Stat()
	if err != nil {
		return fail(err, "cannot stat catalog for backup")
	}

	dst, err := safefile.Create(backupPath, 0644)
	if err != nil {
		return fail(err, "cannot create catalog backup")
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return fail(err, "cannot write catalog backup")
	}
	if err := dst.Commit(); err != nil {
		return fail(err, "cannot commit catalog backup")
	}

	if written != srcInfo.Size() {
		return errors.Newf(errors.ErrCatalogWrite, "catalog backup is incomplete: wrote %d of %d bytes", written, srcInfo.Size()).
			WithDetail("backup", backupPath)
	}
	info, err := os.Stat(backupPath)
	if err != nil {
		return fail(err, "cannot verify catalog backup")
	}
	if info.Size() != srcInfo.Size() {
		return errors.Newf(errors.ErrCatalogWrite, "catalog backup size %d does not match catalog size %d", info.Size(), srcInfo.Size()).
			WithDetail("backup", backupPath)
	}

	s.logger.Debug().Str("backup", backupPath).Int64("bytes", written).Msg("Catalog backed up")
	return nil
}
