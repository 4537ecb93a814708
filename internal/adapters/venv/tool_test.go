package venv_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provenv/internal/adapters/venv"
	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

// fakeVirtualenv puts a recording virtualenv stub on PATH.
func fakeVirtualenv(t *testing.T) string {
	t.Helper()
	binDir := t.TempDir()
	argsFile := filepath.Join(binDir, "virtualenv-args")
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\nexit 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "virtualenv"), []byte(script), 0o755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return argsFile
}

func TestTool_CreateInvokesVirtualenv(t *testing.T) {
	argsFile := fakeVirtualenv(t)
	envPath := filepath.Join(t.TempDir(), "deadbeef", "venv")

	tool := venv.NewTool(newLogger(t), "")
	require.NoError(t, tool.Create(context.Background(), envPath))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-p python3 "+envPath+"\n", string(args))

	// The cache entry directory is materialized for the tool.
	_, err = os.Stat(filepath.Dir(envPath))
	require.NoError(t, err)
}

func TestTool_CreateHonorsInterpreter(t *testing.T) {
	argsFile := fakeVirtualenv(t)
	envPath := filepath.Join(t.TempDir(), "deadbeef", "venv")

	tool := venv.NewTool(newLogger(t), "python3.11")
	require.NoError(t, tool.Create(context.Background(), envPath))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Contains(t, string(args), "-p python3.11")
}

func TestTool_CreateStreamsToolOutput(t *testing.T) {
	binDir := t.TempDir()
	script := "#!/bin/sh\necho created environment\nexit 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "virtualenv"), []byte(script), 0o755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info("created environment").Times(1)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	tool := venv.NewTool(log, "")
	require.NoError(t, tool.Create(context.Background(), filepath.Join(t.TempDir(), "deadbeef", "venv")))
}

func TestTool_RemoveMissingIsNoError(t *testing.T) {
	tool := venv.NewTool(newLogger(t), "")
	require.NoError(t, tool.Remove(filepath.Join(t.TempDir(), "absent")))
}

func TestCloner_MissingToolFailsNonFatally(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "clone")

	err := venv.NewCloner(newLogger(t)).Clone(context.Background(), src, dst)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCloneFailed))
}

func TestCloner_InvokesCloneTool(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "clone")
	argsFile := filepath.Join(src, "clone-args")

	binDir := filepath.Join(src, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	script := "#!/bin/sh\necho \"$@\" > " + argsFile + "\nexit 0\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "virtualenv-clone"), []byte(script), 0o755))

	require.NoError(t, venv.NewCloner(newLogger(t)).Clone(context.Background(), src, dst))

	args, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, src+" "+dst+"\n", string(args))
}

func TestCloner_NonZeroExit(t *testing.T) {
	src := t.TempDir()
	binDir := filepath.Join(src, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "virtualenv-clone"), []byte("#!/bin/sh\nexit 1\n"), 0o755))

	err := venv.NewCloner(newLogger(t)).Clone(context.Background(), src, filepath.Join(t.TempDir(), "clone"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrCloneFailed))
}
