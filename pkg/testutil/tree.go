package testutil

import (
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/stretchr/testify/require"
)

// Tree maps slash-separated relative paths to file contents. A key ending
// in "/" is an empty directory.
type Tree map[string]string

// WriteTree materialises tree under root on fsys.
func WriteTree(t *testing.T, fsys types.FS, root string, tree Tree) {
	t.Helper()

	require.NoError(t, fsys.MkdirAll(root, 0755))

	keys := make([]string, 0, len(tree))
	for k := range tree {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, rel := range keys {
		path := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(rel, "/")))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, fsys.MkdirAll(path, 0755))
			continue
		}
		require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
		w, err := fsys.Create(path, 0644)
		require.NoError(t, err)
		_, err = io.WriteString(w, tree[rel])
		require.NoError(t, err)
		require.NoError(t, w.Close())
	}
}

// ReadTree is the inverse of WriteTree: it returns every file and directory
// under root, directories with a trailing "/".
func ReadTree(t *testing.T, fsys types.FS, root string) Tree {
	t.Helper()

	out := Tree{}
	var walk func(dir, prefix string)
	walk = func(dir, prefix string) {
		entries, err := fsys.ReadDir(dir)
		require.NoError(t, err)
		for _, e := range entries {
			rel := prefix + e.Name()
			full := filepath.Join(dir, e.Name())
			if e.IsDir() {
				out[rel+"/"] = ""
				walk(full, rel+"/")
				continue
			}
			r, err := fsys.Open(full)
			require.NoError(t, err)
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			out[rel] = string(data)
		}
	}
	walk(root, "")
	return out
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}

// IsNotExist reports whether path is definitely absent on fsys.
func IsNotExist(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return errors.Is(err, fs.ErrNotExist)
}
