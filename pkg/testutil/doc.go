// Package testutil provides fixtures for testing gameshift components.
//
// Key components:
//   - TestEnvironment: isolated config/state dirs plus an in-memory or
//     temp-dir filesystem
//   - Tree / WriteTree / ReadTree: declarative directory trees
//   - FaultFS: a filesystem wrapper that fails chosen operations
//   - CreateCatalog: a launcher-shaped SQLite catalog on disk
//
// All test data is defined inline; nothing is read from fixture files.
package testutil
