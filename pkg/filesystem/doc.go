// Package filesystem provides filesystem implementations for gameshift.
//
// NewOS talks to the real disk. NewMemory is backed by afero's MemMapFs and
// is what the copier, comparator and mover unit tests run against.
package filesystem
