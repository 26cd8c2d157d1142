package compare_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/compare"
	"github.com/arthur-debert/gameshift/pkg/copier"
	"github.com/arthur-debert/gameshift/pkg/filesystem"
	"github.com/arthur-debert/gameshift/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tree = testutil.Tree{
	"game.exe":        "MZ",
	"data/level1.pak": "one",
	"data/sub/x.cfg":  "x",
	"empty/":          "",
}

func TestDiffTrees_Identical(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/left", tree)
	testutil.WriteTree(t, fsys, "/right", tree)

	diff, err := compare.DiffTrees(fsys, "/left", "/right")
	require.NoError(t, err)
	assert.True(t, diff.Empty())
	assert.Empty(t, diff.LeftOnly)
	assert.Empty(t, diff.RightOnly)
}

func TestDiffTrees_ContentIsIgnored(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/left", testutil.Tree{"a.txt": "one"})
	testutil.WriteTree(t, fsys, "/right", testutil.Tree{"a.txt": "completely different"})

	diff, err := compare.DiffTrees(fsys, "/left", "/right")
	require.NoError(t, err)
	assert.True(t, diff.Empty())
}

func TestDiffTrees_ExtraEntries(t *testing.T) {
	tests := []struct {
		name       string
		leftExtra  testutil.Tree
		rightExtra testutil.Tree
		wantLeft   []string
		wantRight  []string
	}{
		{
			name:      "extra_file_left",
			leftExtra: testutil.Tree{"data/extra.pak": "e"},
			wantLeft:  []string{"data/extra.pak"},
		},
		{
			name:       "extra_file_right",
			rightExtra: testutil.Tree{"data/sub/new.cfg": "n"},
			wantRight:  []string{"data/sub/new.cfg"},
		},
		{
			name:       "extra_directory_both_sides",
			leftExtra:  testutil.Tree{"mods/a.mod": "a"},
			rightExtra: testutil.Tree{"logs/": ""},
			wantLeft:   []string{"mods/", "mods/a.mod"},
			wantRight:  []string{"logs/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := filesystem.NewMemory()
			testutil.WriteTree(t, fsys, "/left", tree)
			testutil.WriteTree(t, fsys, "/right", tree)
			if tt.leftExtra != nil {
				testutil.WriteTree(t, fsys, "/left", tt.leftExtra)
			}
			if tt.rightExtra != nil {
				testutil.WriteTree(t, fsys, "/right", tt.rightExtra)
			}

			diff, err := compare.DiffTrees(fsys, "/left", "/right")
			require.NoError(t, err)
			assert.False(t, diff.Empty())
			assert.Equal(t, tt.wantLeft, diff.LeftOnly)
			assert.Equal(t, tt.wantRight, diff.RightOnly)
		})
	}
}

func TestDiffTrees_FileVersusDirectory(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/left", testutil.Tree{"thing": "file"})
	testutil.WriteTree(t, fsys, "/right", testutil.Tree{"thing/": ""})

	diff, err := compare.DiffTrees(fsys, "/left", "/right")
	require.NoError(t, err)
	assert.Equal(t, []string{"thing"}, diff.LeftOnly)
	assert.Equal(t, []string{"thing/"}, diff.RightOnly)
}

func TestDiffTrees_MissingRootIsEmpty(t *testing.T) {
	fsys := filesystem.NewMemory()
	testutil.WriteTree(t, fsys, "/left", testutil.Tree{"a": "1", "b/c": "2"})

	diff, err := compare.DiffTrees(fsys, "/left", "/missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b/", "b/c"}, diff.LeftOnly)
	assert.Empty(t, diff.RightOnly)

	diff, err = compare.DiffTrees(fsys, "/missing", "/left")
	require.NoError(t, err)
	assert.Empty(t, diff.LeftOnly)
	assert.Equal(t, []string{"a", "b/", "b/c"}, diff.RightOnly)

	diff, err = compare.DiffTrees(fsys, "/missing", "/also-missing")
	require.NoError(t, err)
	assert.True(t, diff.Empty())
}

func TestDiffTrees_AfterCopyOnDisk(t *testing.T) {
	fsys := filesystem.NewOS()
	root := t.TempDir()
	src := filepath.Join(root, "Library", "GameA")
	dst := filepath.Join(root, "Games", "GameA")
	testutil.WriteTree(t, fsys, src, tree)

	require.NoError(t, copier.CopyTree(fsys, src, dst, nil))

	diff, err := compare.DiffTrees(fsys, src, dst)
	require.NoError(t, err)
	assert.True(t, diff.Empty(), "diff: %+v", diff)
}
