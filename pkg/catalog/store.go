package catalog

import (
	"database/sql"
	"os"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

// DefaultBackupSuffix is appended to the catalog path for the pre-write backup
const DefaultBackupSuffix = ".bak"

// Options configures a Store
type Options struct {
	Path         string
	BackupSuffix string
	Schema       Schema
}

// Store is the launcher catalog on disk
type Store struct {
	path         string
	backupSuffix string
	schema       Schema
	logger       zerolog.Logger
}

// New creates a Store. Nothing is opened until a method is called.
func New(opts Options) *Store {
	if opts.BackupSuffix == "" {
		opts.BackupSuffix = DefaultBackupSuffix
	}
	if opts.Schema == (Schema{}) {
		opts.Schema = DefaultSchema()
	}
	return &Store{
		path:         opts.Path,
		backupSuffix: opts.BackupSuffix,
		schema:       opts.Schema,
		logger:       logging.GetLogger("catalog"),
	}
}

// Path returns the catalog file path
func (s *Store) Path() string {
	return s.path
}

// BackupPath returns where the pre-write backup is written
func (s *Store) BackupPath() string {
	return s.path + s.backupSuffix
}

// open returns a connection to an existing catalog file. The SQLite driver
// would happily create a missing file, so existence is checked first.
func (s *Store) open() (*sql.DB, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot open catalog %s", s.path).
			WithDetail("path", s.path)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrCatalogUnavailable, "catalog %s is a directory", s.path).
			WithDetail("path", s.path)
	}

	db, err := sql.Open(driverName, s.path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot open catalog %s", s.path).
			WithDetail("path", s.path)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot open catalog %s", s.path).
			WithDetail("path", s.path)
	}
	return db, nil
}

// Load returns every install record in table order
func (s *Store) Load() ([]types.InstallRecord, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(s.schema.selectAll())
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot read catalog %s", s.path).
			WithDetail("path", s.path)
	}
	defer rows.Close()

	var records []types.InstallRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot read catalog %s", s.path)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot read catalog %s", s.path)
	}

	s.logger.Debug().Str("path", s.path).Int("records", len(records)).Msg("Catalog loaded")
	return records, nil
}

// Get returns the record with the given product id
func (s *Store) Get(id string) (types.InstallRecord, error) {
	db, err := s.open()
	if err != nil {
		return types.InstallRecord{}, err
	}
	defer db.Close()

	rec, err := scanRecord(db.QueryRow(s.schema.selectOne(), id))
	if err == sql.ErrNoRows {
		return types.InstallRecord{}, errors.Newf(errors.ErrRecordNotFound, "game with ID %s not found", id).
			WithDetail("id", id)
	}
	if err != nil {
		return types.InstallRecord{}, errors.Wrapf(err, errors.ErrCatalogUnavailable, "cannot read catalog %s", s.path)
	}
	return rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (types.InstallRecord, error) {
	var id, title, path sql.NullString
	if err := row.Scan(&id, &title, &path); err != nil {
		return types.InstallRecord{}, err
	}
	return types.InstallRecord{ID: id.String, Title: title.String, InstallPath: path.String}, nil
}
