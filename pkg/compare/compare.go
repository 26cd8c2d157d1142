// Package compare diffs two directory trees by entry name.
//
// Only presence matters: file contents, sizes and timestamps are not
// looked at. A root that does not exist is treated as an empty tree, so
// callers that expect a directory to exist must check for it themselves.
package compare

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/gameshift/pkg/types"
)

// Diff holds entries present under only one of the two roots, as sorted
// slash-separated paths relative to the root
type Diff struct {
	LeftOnly  []string
	RightOnly []string
}

// Empty reports whether both trees hold the same entries
func (d Diff) Empty() bool {
	return len(d.LeftOnly) == 0 && len(d.RightOnly) == 0
}

// DiffTrees compares the full recursive contents of left and right
func DiffTrees(fsys types.FS, left, right string) (Diff, error) {
	l, err := listTree(fsys, left)
	if err != nil {
		return Diff{}, err
	}
	r, err := listTree(fsys, right)
	if err != nil {
		return Diff{}, err
	}

	return Diff{
		LeftOnly:  missingFrom(l, r),
		RightOnly: missingFrom(r, l),
	}, nil
}

// listTree returns every entry under root keyed by relative path. A
// trailing "/" marks directories so a file never matches a directory.
func listTree(fsys types.FS, root string) (map[string]struct{}, error) {
	out := make(map[string]struct{})

	info, err := fsys.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return out, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return out, nil
	}

	var walk func(dir, prefix string) error
	walk = func(dir, prefix string) error {
		entries, err := fsys.ReadDir(dir)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			rel := prefix + entry.Name()

			info, err := fsys.Stat(full)
			if err != nil {
				return err
			}
			if info.IsDir() {
				out[rel+"/"] = struct{}{}
				if err := walk(full, rel+"/"); err != nil {
					return err
				}
				continue
			}
			out[rel] = struct{}{}
		}
		return nil
	}

	if err := walk(root, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func missingFrom(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
