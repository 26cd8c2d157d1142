package testutil

import (
	"database/sql"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// CreateCatalog writes a launcher-shaped catalog (table DbSet) at path
// holding records, in order.
func CreateCatalog(t *testing.T, path string, records ...types.InstallRecord) {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE "DbSet" (
		"Id" INTEGER PRIMARY KEY AUTOINCREMENT,
		"ProductAsin" TEXT NOT NULL UNIQUE,
		"ProductTitle" TEXT,
		"InstallDirectory" TEXT
	)`)
	require.NoError(t, err)

	for _, rec := range records {
		_, err := db.Exec(`INSERT INTO "DbSet" ("ProductAsin", "ProductTitle", "InstallDirectory") VALUES (?, ?, ?)`,
			rec.ID, rec.Title, rec.InstallPath)
		require.NoError(t, err)
	}
}

// CatalogInstallPath reads a record's install path straight from the file,
// bypassing the catalog package.
func CatalogInstallPath(t *testing.T, path, id string) string {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var installPath string
	err = db.QueryRow(`SELECT "InstallDirectory" FROM "DbSet" WHERE "ProductAsin" = ?`, id).Scan(&installPath)
	require.NoError(t, err)
	return installPath
}
