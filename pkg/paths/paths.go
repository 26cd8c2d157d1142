// Package paths provides centralized path handling for gameshift.
// It resolves the launcher's catalog location, the XDG config directory and
// path comparisons used to decide whether a move is a no-op.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/gameshift/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for gameshift
	EnvConfigDir = "GAMESHIFT_CONFIG_DIR"

	// EnvLocalAppData is where Windows keeps per-user launcher data
	EnvLocalAppData = "LOCALAPPDATA"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for gameshift-specific files
	AppDirName = "gameshift"

	// ConfigFileName is the user configuration file
	ConfigFileName = "config.toml"

	// CatalogFileName is the launcher's install database
	CatalogFileName = "GameInstallInfo.sqlite"
)

// catalogRelDir is where the launcher keeps its catalog under the local app data dir
var catalogRelDir = []string{"Amazon Games", "Data", "Games", "Sql"}

// DefaultCatalogPath returns the launcher catalog location for this platform.
// On Windows this is under %LOCALAPPDATA%; elsewhere the XDG data home stands
// in for it (Wine prefixes, test machines).
func DefaultCatalogPath() string {
	base := xdg.DataHome
	if runtime.GOOS == "windows" {
		if local := os.Getenv(EnvLocalAppData); local != "" {
			base = local
		} else if home, err := os.UserHomeDir(); err == nil {
			base = filepath.Join(home, "AppData", "Local")
		}
	}
	parts := append([]string{base}, catalogRelDir...)
	parts = append(parts, CatalogFileName)
	return filepath.Join(parts...)
}

// ConfigDir returns the config directory, respecting GAMESHIFT_CONFIG_DIR
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the user configuration file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}

		// ~something (not the user's home)
		return path
	}

	return path
}

// Normalize expands ~ and returns an absolute, cleaned path
func Normalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "path is empty")
	}
	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot make %q absolute", path)
	}
	return abs, nil
}

// Same reports whether a and b resolve to the same absolute path.
// Windows paths compare case-insensitively.
func Same(a, b string) bool {
	na, errA := Normalize(a)
	nb, errB := Normalize(b)
	if errA != nil || errB != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		return strings.EqualFold(na, nb)
	}
	return na == nb
}

// Within reports whether child is parent itself or lives underneath it.
func Within(parent, child string) bool {
	np, errP := Normalize(parent)
	nc, errC := Normalize(child)
	if errP != nil || errC != nil {
		return false
	}
	if runtime.GOOS == "windows" {
		np, nc = strings.ToLower(np), strings.ToLower(nc)
	}
	rel, err := filepath.Rel(np, nc)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
