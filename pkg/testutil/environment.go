// pkg/testutil/environment.go
// DEPENDENCIES: filesystem, paths, logging
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/filesystem"
	"github.com/arthur-debert/gameshift/pkg/logging"
	"github.com/arthur-debert/gameshift/pkg/paths"
	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// memoryRoot is where in-memory environments keep their files
const memoryRoot = "/gameshift-test"

// TestEnvironment gives a test its own filesystem and gameshift directories
type TestEnvironment struct {
	Root      string
	ConfigDir string
	StateDir  string

	FS   types.FS
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates an environment and points gameshift's config
// and state directories into it for the duration of the test
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.Root = memoryRoot
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.Root = t.TempDir()
		env.FS = filesystem.NewOS()
	}
	env.ConfigDir = filepath.Join(env.Root, "config")
	env.StateDir = filepath.Join(env.Root, "state")

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(logging.EnvStateDir, env.StateDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(env.Root, "data"))

	return env
}

// Path joins parts under the environment root
func (e *TestEnvironment) Path(parts ...string) string {
	return filepath.Join(append([]string{e.Root}, parts...)...)
}

// AddGame writes an install tree for rec and, when aux is not nil, its
// installer data directory. rec.InstallPath must be inside the environment.
func (e *TestEnvironment) AddGame(rec types.InstallRecord, install, aux Tree) {
	e.t.Helper()

	WriteTree(e.t, e.FS, rec.InstallPath, install)
	if aux != nil {
		WriteTree(e.t, e.FS, rec.AuxDataPath(types.DefaultAuxDirName), aux)
	}
}

// Catalog writes a catalog holding records under the environment root and
// returns its path. Only isolated environments can hold a catalog.
func (e *TestEnvironment) Catalog(records ...types.InstallRecord) string {
	e.t.Helper()
	require.Equal(e.t, EnvIsolated, e.Type, "catalogs need a real filesystem")

	path := e.Path("GameInstallInfo.sqlite")
	CreateCatalog(e.t, path, records...)
	return path
}
