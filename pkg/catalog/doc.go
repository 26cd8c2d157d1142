// Package catalog reads and updates the launcher's install database.
//
// The catalog is a SQLite file owned by the launcher. gameshift never
// creates or deletes rows; it reads every record and rewrites a single
// record's install path. Every call opens its own connection and closes it
// before returning, so nothing is held open while a move copies files.
//
// Before any write the whole database file is copied to a sibling backup
// (catalog path + backup suffix). If that copy cannot be made the write is
// not attempted. The backup is never removed automatically.
package catalog
