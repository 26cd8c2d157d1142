package copier_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/copier"
	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/filesystem"
	"github.com/arthur-debert/gameshift/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gameTree holds five files and one empty directory
var gameTree = testutil.Tree{
	"game.exe":          "MZ",
	"data/level1.pak":   "level one",
	"data/level2.pak":   "level two",
	"data/sub/deep.cfg": "deep",
	"saves/":            "",
	"README.txt":        "hello",
}

func TestCopyTree(t *testing.T) {
	fsys := filesystem.NewMemory()
	src := filepath.FromSlash("/c/Library/GameA")
	dst := filepath.FromSlash("/d/Games/GameA")
	testutil.WriteTree(t, fsys, src, gameTree)

	var events []copier.Progress
	err := copier.CopyTree(fsys, src, dst, func(p copier.Progress) {
		events = append(events, p)
	})
	require.NoError(t, err)

	assert.Equal(t, testutil.ReadTree(t, fsys, src), testutil.ReadTree(t, fsys, dst))

	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Done)
		assert.Equal(t, 5, ev.Total)
		assert.NotEmpty(t, ev.Path)
	}
	assert.Equal(t, float64(100), events[len(events)-1].Percent())
}

func TestCopyTree_OverwritesExistingFiles(t *testing.T) {
	fsys := filesystem.NewMemory()
	src := filepath.FromSlash("/src/Game")
	dst := filepath.FromSlash("/dst/Game")
	testutil.WriteTree(t, fsys, src, testutil.Tree{"a.txt": "new", "b/c.txt": "new c"})
	testutil.WriteTree(t, fsys, dst, testutil.Tree{"a.txt": "old and longer", "keep.txt": "kept"})

	require.NoError(t, copier.CopyTree(fsys, src, dst, nil))

	got := testutil.ReadTree(t, fsys, dst)
	assert.Equal(t, "new", got["a.txt"])
	assert.Equal(t, "new c", got["b/c.txt"])
	assert.Equal(t, "kept", got["keep.txt"], "copy does not delete unrelated destination files")
}

func TestCopyTree_EmptySource(t *testing.T) {
	fsys := filesystem.NewMemory()
	src := filepath.FromSlash("/src/Empty")
	dst := filepath.FromSlash("/dst/Empty")
	require.NoError(t, fsys.MkdirAll(src, 0755))

	called := false
	require.NoError(t, copier.CopyTree(fsys, src, dst, func(copier.Progress) { called = true }))
	assert.False(t, called)
	assert.True(t, testutil.Exists(fsys, dst))
}

func TestCopyTree_MissingSource(t *testing.T) {
	fsys := filesystem.NewMemory()

	err := copier.CopyTree(fsys, "/nope", "/dst", nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopy))
	assert.Equal(t, "/nope", errors.GetErrorDetails(err)["source"])
	assert.False(t, testutil.Exists(fsys, "/dst"), "nothing is written when the source is missing")
}

func TestCopyTree_SourceIsFile(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/src", testutil.Tree{"file": "x"})

	err := copier.CopyTree(fsys, filepath.FromSlash("/src/file"), "/dst", nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopy))
}

func TestCopyTree_WriteFailureLeavesPartialCopy(t *testing.T) {
	fsys := testutil.NewFaultFS(filesystem.NewMemory())
	src := filepath.FromSlash("/src/Game")
	dst := filepath.FromSlash("/dst/Game")
	testutil.WriteTree(t, fsys, src, gameTree)

	// WriteTree created 5 files; fail the 2nd file of the copy
	fsys.FailCreateAfter(5 + 2)

	var done int
	err := copier.CopyTree(fsys, src, dst, func(p copier.Progress) { done = p.Done })
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCopy))
	assert.ErrorIs(t, err, testutil.ErrInjected)
	assert.Equal(t, 1, done)
	assert.True(t, testutil.Exists(fsys, dst), "partial destination is left for the caller")
}

func TestCopyTree_OnOSFilesystem(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	src := filepath.Join(root, "Library", "GameA")
	dst := filepath.Join(root, "Games", "GameA")
	testutil.WriteTree(t, fsys, src, gameTree)

	require.NoError(t, copier.CopyTree(fsys, src, dst, nil))
	assert.Equal(t, testutil.ReadTree(t, fsys, src), testutil.ReadTree(t, fsys, dst))
}

func TestCountFiles(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/g", gameTree)

	n, err := copier.CountFiles(fsys, "/g")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}
