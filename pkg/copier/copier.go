// Package copier copies directory trees through a types.FS, reporting
// per-file progress.
package copier

import (
	"io"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/gameshift/pkg/errors"
	"github.com/arthur-debert/gameshift/pkg/types"
)

// Progress is emitted after every copied file
type Progress struct {
	Done  int
	Total int
	// Path is the file just copied, relative to the source root
	Path string
}

// Percent returns Done as a percentage of Total
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) * 100 / float64(p.Total)
}

// ProgressFunc receives copy progress. It cannot influence the copy.
type ProgressFunc func(Progress)

// CopyTree copies every file and directory under source into destination,
// creating destination and intermediate directories and overwriting files
// that already exist. A failure may leave a partial copy behind; callers own
// the cleanup.
func CopyTree(fsys types.FS, source, destination string, onProgress ProgressFunc) error {
	info, err := fsys.Stat(source)
	if err != nil {
		return copyErr(err, "source does not exist", source, destination)
	}
	if !info.IsDir() {
		return copyErr(&fs.PathError{Op: "copytree", Path: source, Err: fs.ErrInvalid}, "source is not a directory", source, destination)
	}

	total, err := countFiles(fsys, source)
	if err != nil {
		return copyErr(err, "cannot scan source", source, destination)
	}

	c := &treeCopier{fsys: fsys, total: total, onProgress: onProgress}
	if err := c.copyDir(source, destination, "", info.Mode().Perm()); err != nil {
		return copyErr(err, "copy failed", source, destination)
	}
	return nil
}

// CountFiles returns the number of regular files under root
func CountFiles(fsys types.FS, root string) (int, error) {
	return countFiles(fsys, root)
}

type treeCopier struct {
	fsys       types.FS
	total      int
	done       int
	onProgress ProgressFunc
}

func (c *treeCopier) copyDir(src, dst, rel string, perm fs.FileMode) error {
	if err := c.fsys.MkdirAll(dst, perm|0700); err != nil {
		return err
	}

	entries, err := c.fsys.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		relPath := filepath.ToSlash(filepath.Join(rel, entry.Name()))

		// Stat follows links, so linked content is copied as plain files
		info, err := c.fsys.Stat(srcPath)
		if err != nil {
			return err
		}

		if info.IsDir() {
			if err := c.copyDir(srcPath, dstPath, relPath, info.Mode().Perm()); err != nil {
				return err
			}
			continue
		}

		if err := c.copyFile(srcPath, dstPath, info.Mode().Perm()); err != nil {
			return err
		}
		c.done++
		if c.onProgress != nil {
			c.onProgress(Progress{Done: c.done, Total: c.total, Path: relPath})
		}
	}
	return nil
}

func (c *treeCopier) copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := c.fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := c.fsys.Create(dst, perm|0600)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

func countFiles(fsys types.FS, root string) (int, error) {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		info, err := fsys.Stat(path)
		if err != nil {
			return 0, err
		}
		if info.IsDir() {
			sub, err := countFiles(fsys, path)
			if err != nil {
				return 0, err
			}
			n += sub
			continue
		}
		n++
	}
	return n, nil
}

func copyErr(err error, msg, source, destination string) error {
	return errors.Wrap(err, errors.ErrCopy, msg).
		WithDetail("source", source).
		WithDetail("destination", destination)
}
