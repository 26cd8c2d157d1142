package types

import (
	"path/filepath"
)

// DefaultAuxDirName is the sibling folder the launcher keeps installer data in.
const DefaultAuxDirName = "__InstallData__"

// InstallRecord is one row of the launcher's install catalog.
type InstallRecord struct {
	ID          string
	Title       string
	InstallPath string
}

// BaseDir returns the directory the install tree lives under.
func (r InstallRecord) BaseDir() string {
	return filepath.Dir(r.InstallPath)
}

// DirName returns the install tree's own folder name, which never changes
// across a move.
func (r InstallRecord) DirName() string {
	return filepath.Base(r.InstallPath)
}

// AuxDataPath returns the auxiliary installer data directory for the record.
func (r InstallRecord) AuxDataPath(auxDirName string) string {
	return AuxDataPath(r.InstallPath, auxDirName)
}

// InstallPathUnder returns where the install tree lands when moved to baseDir.
func (r InstallRecord) InstallPathUnder(baseDir string) string {
	return filepath.Join(baseDir, r.DirName())
}

// AuxDataPath derives <parent>/<auxDirName>/<basename> for an install path.
func AuxDataPath(installPath, auxDirName string) string {
	if auxDirName == "" {
		auxDirName = DefaultAuxDirName
	}
	return filepath.Join(filepath.Dir(installPath), auxDirName, filepath.Base(installPath))
}
