// Package mover relocates one install tree, and its auxiliary installer
// data directory, to a new base directory.
//
// A move runs through these states:
//
//	Idle -> Copying -> Verifying -> Committing -> Done
//	                \-> RollingBack -> Failed
//
// The ordering rules are what keep data safe:
//
//   - the source is copied, never renamed, so it exists until the end
//   - the copy is diffed against the source before anything is committed
//   - the catalog is pointed at the copy before the source is deleted
//
// A crash at any point therefore leaves either the catalog pointing at an
// intact source, or the catalog pointing at a verified copy with the old
// source still on disk. Failures before commit delete the destination and
// never touch the source. A destination sharing a subtree with either
// source tree is rejected before any write, so a rollback cannot reach it.
//
// Moves are strictly sequential; MoveAll is a plain loop and a failed
// record does not stop the ones after it.
package mover
