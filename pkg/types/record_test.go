package types_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/gameshift/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestInstallRecord_DerivedPaths(t *testing.T) {
	lib := filepath.Join(string(filepath.Separator), "games", "Library")
	rec := types.InstallRecord{
		ID:          "X1",
		Title:       "Game A",
		InstallPath: filepath.Join(lib, "GameA"),
	}

	assert.Equal(t, lib, rec.BaseDir())
	assert.Equal(t, "GameA", rec.DirName())
	assert.Equal(t, filepath.Join(lib, "__InstallData__", "GameA"), rec.AuxDataPath(""))
	assert.Equal(t, filepath.Join(lib, "Extra", "GameA"), rec.AuxDataPath("Extra"))

	dest := filepath.Join(string(filepath.Separator), "mnt", "d", "Games")
	assert.Equal(t, filepath.Join(dest, "GameA"), rec.InstallPathUnder(dest))
}

func TestAuxDataPath_FollowsInstallBase(t *testing.T) {
	dest := filepath.Join(string(filepath.Separator), "mnt", "d", "Games")
	moved := filepath.Join(dest, "GameA")

	assert.Equal(t,
		filepath.Join(dest, types.DefaultAuxDirName, "GameA"),
		types.AuxDataPath(moved, types.DefaultAuxDirName),
	)
}
