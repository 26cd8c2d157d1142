// Package paths resolves the catalog and configuration locations.
//
// Resolution order for the catalog is: --catalog flag, catalog.path from the
// configuration (which includes GAMESHIFT_CATALOG_PATH), then
// DefaultCatalogPath.
package paths
