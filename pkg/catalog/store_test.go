// pkg/catalog/store_test.go
// TEST TYPE: Catalog Tests
// DEPENDENCIES: Real filesystem, real SQLite files
// PURPOSE: Test catalog reads, writes and the backup-before-write guarantee

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/catalog"
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/testutil"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []types.InstallRecord {
	return []types.InstallRecord{
		{ID: "X1", Title: "Game A", InstallPath: "/lib/GameA"},
		{ID: "X2", Title: "Game B", InstallPath: "/lib/GameB"},
		{ID: "X3", Title: "Another", InstallPath: "/other/Another"},
	}
}

func setupCatalog(t *testing.T) (*catalog.Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "GameInstallInfo.sqlite")
	testutil.CreateCatalog(t, path, sampleRecords()...)
	return catalog.New(catalog.Options{Path: path}), path
}

func TestLoad(t *testing.T) {
	store, _ := setupCatalog(t)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), records)
}

func TestLoad_Unavailable(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing_file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.sqlite")
			},
		},
		{
			name: "directory_instead_of_file",
			setup: func(t *testing.T) string {
				return t.TempDir()
			},
		},
		{
			name: "corrupt_file",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "corrupt.sqlite")
				require.NoError(t, os.WriteFile(path, []byte("definitely not a database, just plain text padding it out"), 0644))
				return path
			},
		},
		{
			name: "missing_table",
			setup: func(t *testing.T) string {
				path := filepath.Join(t.TempDir(), "empty.sqlite")
				testutil.CreateCatalog(t, path)
				return path
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.setup(t)
			schema := catalog.DefaultSchema()
			if tt.name == "missing_table" {
				schema.Table = "NoSuchTable"
			}
			store := catalog.New(catalog.Options{Path: path, Schema: schema})

			_, err := store.Load()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogUnavailable), "got %v", err)
		})
	}
}

func TestLoad_DoesNotCreateMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite")
	_, err := catalog.New(catalog.Options{Path: path}).Load()
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "reading must not create the catalog")
}

func TestGet(t *testing.T) {
	store, _ := setupCatalog(t)

	rec, err := store.Get("X2")
	require.NoError(t, err)
	assert.Equal(t, "Game B", rec.Title)
	assert.Equal(t, "/lib/GameB", rec.InstallPath)

	_, err = store.Get("nope")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordNotFound))
}

func TestUpdatePath(t *testing.T) {
	store, path := setupCatalog(t)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.UpdatePath("X1", "/new/GameA"))

	assert.Equal(t, "/new/GameA", testutil.CatalogInstallPath(t, path, "X1"))
	assert.Equal(t, "/lib/GameB", testutil.CatalogInstallPath(t, path, "X2"), "other rows are untouched")

	backup, err := os.ReadFile(store.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, before, backup, "backup holds the catalog as it was before the write")
	assert.Equal(t, path+".bak", store.BackupPath())
}

func TestUpdatePath_OverwritesPreviousBackup(t *testing.T) {
	store, path := setupCatalog(t)

	require.NoError(t, os.WriteFile(store.BackupPath(), []byte("stale"), 0644))
	require.NoError(t, store.UpdatePath("X1", "/first"))

	beforeSecond, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, store.UpdatePath("X1", "/second"))

	backup, err := os.ReadFile(store.BackupPath())
	require.NoError(t, err)
	assert.Equal(t, beforeSecond, backup)
}

func TestUpdatePath_RecordNotFound(t *testing.T) {
	store, _ := setupCatalog(t)

	err := store.UpdatePath("nope", "/x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRecordNotFound))

	_, statErr := os.Stat(store.BackupPath())
	assert.NoError(t, statErr, "backup is still taken before the write is attempted")
}

func TestUpdatePath_BackupFailureLeavesCatalogUntouched(t *testing.T) {
	store, path := setupCatalog(t)

	// a non-empty directory where the backup file should go makes the
	// backup commit fail regardless of privileges
	require.NoError(t, os.MkdirAll(filepath.Join(store.BackupPath(), "occupied"), 0755))

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = store.UpdatePath("X1", "/new/GameA")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogWrite), "got %v", err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "catalog must not be mutated without a backup")
	assert.Equal(t, "/lib/GameA", testutil.CatalogInstallPath(t, path, "X1"))
}

func TestUpdatePath_WriteFailureKeepsBackup(t *testing.T) {
	_, path := setupCatalog(t)

	schema := catalog.DefaultSchema()
	schema.PathColumn = "NoSuchColumn"
	store := catalog.New(catalog.Options{Path: path, Schema: schema, BackupSuffix: ".orig"})

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	err = store.UpdatePath("X1", "/new/GameA")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogWrite), "got %v", err)
	assert.Equal(t, store.BackupPath(), errors.GetErrorDetails(err)["backup"])

	backup, err := os.ReadFile(path + ".orig")
	require.NoError(t, err)
	assert.Equal(t, before, backup)
}

func TestUpdatePath_MissingCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite")
	store := catalog.New(catalog.Options{Path: path})

	err := store.UpdatePath("X1", "/x")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogWrite))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
