package catalog

import (
	"fmt"
	"strings"
)

// Schema names the table and columns install records live in
type Schema struct {
	Table       string
	IDColumn    string
	TitleColumn string
	PathColumn  string
}

// DefaultSchema matches the launcher's GameInstallInfo database
func DefaultSchema() Schema {
	return Schema{
		Table:       "DbSet",
		IDColumn:    "ProductAsin",
		TitleColumn: "ProductTitle",
		PathColumn:  "InstallDirectory",
	}
}

func (s Schema) selectAll() string {
	return fmt.Sprintf("SELECT %s, %s, %s FROM %s",
		quoteIdent(s.IDColumn), quoteIdent(s.TitleColumn), quoteIdent(s.PathColumn), quoteIdent(s.Table))
}

func (s Schema) selectOne() string {
	return s.selectAll() + fmt.Sprintf(" WHERE %s = ?", quoteIdent(s.IDColumn))
}

func (s Schema) updatePath() string {
	return fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?",
		quoteIdent(s.Table), quoteIdent(s.PathColumn), quoteIdent(s.IDColumn))
}

// quoteIdent quotes a configured table or column name for SQLite
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
