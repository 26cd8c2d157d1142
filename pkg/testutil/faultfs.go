package testutil

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/arthur-debert/gameshift/pkg/types"
)

// ErrInjected is returned by FaultFS for every injected failure.
var ErrInjected = fmt.Errorf("injected failure")

// FaultFS wraps a types.FS and fails selected operations on demand.
type FaultFS struct {
	types.FS

	mu sync.Mutex

	// failCreateAfter > 0 makes the Nth Create (1-based) and every later one fail
	failCreateAfter int
	creates         int

	dropped         map[string]bool
	removeAllErrors map[string]error
	removeAllCalls  []string
	mutations       int
}

// NewFaultFS wraps inner with no faults configured.
func NewFaultFS(inner types.FS) *FaultFS {
	return &FaultFS{
		FS:              inner,
		dropped:         make(map[string]bool),
		removeAllErrors: make(map[string]error),
	}
}

// DropCreate makes Create on path report success while writing nothing,
// leaving a hole in the copied tree.
func (f *FaultFS) DropCreate(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dropped[filepath.Clean(path)] = true
}

// FailCreateAfter makes the nth file creation, and all after it, fail.
func (f *FaultFS) FailCreateAfter(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failCreateAfter = n
}

// FailRemoveAll makes RemoveAll on path fail without removing anything.
func (f *FaultFS) FailRemoveAll(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removeAllErrors[filepath.Clean(path)] = ErrInjected
}

// RemoveAllCalls returns the paths RemoveAll was called with, in order.
func (f *FaultFS) RemoveAllCalls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.removeAllCalls...)
}

// Mutations counts every call that could change the filesystem.
func (f *FaultFS) Mutations() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mutations
}

func (f *FaultFS) Create(name string, perm fs.FileMode) (io.WriteCloser, error) {
	f.mu.Lock()
	f.mutations++
	f.creates++
	fail := f.failCreateAfter > 0 && f.creates >= f.failCreateAfter
	drop := f.dropped[filepath.Clean(name)]
	f.mu.Unlock()

	if fail {
		return nil, &fs.PathError{Op: "create", Path: name, Err: ErrInjected}
	}
	if drop {
		return nopWriteCloser{io.Discard}, nil
	}
	return f.FS.Create(name, perm)
}

func (f *FaultFS) MkdirAll(path string, perm fs.FileMode) error {
	f.mu.Lock()
	f.mutations++
	f.mu.Unlock()
	return f.FS.MkdirAll(path, perm)
}

func (f *FaultFS) RemoveAll(path string) error {
	f.mu.Lock()
	f.mutations++
	f.removeAllCalls = append(f.removeAllCalls, path)
	err := f.removeAllErrors[filepath.Clean(path)]
	f.mu.Unlock()

	if err != nil {
		return &fs.PathError{Op: "removeall", Path: path, Err: err}
	}
	return f.FS.RemoveAll(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
