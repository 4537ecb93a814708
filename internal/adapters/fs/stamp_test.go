package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provenv/internal/adapters/fs"
)

func TestStampStore_Lifecycle(t *testing.T) {
	envPath := t.TempDir()
	stamps := fs.NewStampStore()

	assert.False(t, stamps.Exists(envPath))

	require.NoError(t, stamps.Write(envPath))
	assert.True(t, stamps.Exists(envPath))

	require.NoError(t, stamps.Remove(envPath))
	assert.False(t, stamps.Exists(envPath))

	// Removing a missing stamp is not an error.
	require.NoError(t, stamps.Remove(envPath))
}

func TestLinker_ReplacesExistingLink(t *testing.T) {
	tmpDir := t.TempDir()
	first := filepath.Join(tmpDir, "env-one")
	second := filepath.Join(tmpDir, "env-two")
	require.NoError(t, os.Mkdir(first, 0o755))
	require.NoError(t, os.Mkdir(second, 0o755))

	target := filepath.Join(tmpDir, "current")
	linker := fs.NewLinker()

	require.NoError(t, linker.Link(first, target))
	require.NoError(t, linker.Link(second, target))

	dest, err := os.Readlink(target)
	require.NoError(t, err)
	assert.Equal(t, second, dest)
}

func TestLinker_PatchActivate(t *testing.T) {
	tmpDir := t.TempDir()
	envPath := filepath.Join(tmpDir, "cache", "deadbeef", "venv")
	binDir := filepath.Join(envPath, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0o755))

	script := "# This file must be used with \"source bin/activate\"\n" +
		"deactivate () {\n" +
		"    unset VIRTUAL_ENV\n" +
		"}\n" +
		"VIRTUAL_ENV=\"" + envPath + "\"\n" +
		"export VIRTUAL_ENV\n"
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "activate"), []byte(script), 0o644))

	target := filepath.Join(tmpDir, "current")
	linker := fs.NewLinker()
	require.NoError(t, linker.Link(envPath, target))
	require.NoError(t, linker.PatchActivate(target))

	// The write goes through the symlink, so the cache leaf's script is
	// what changed.
	patched, err := os.ReadFile(filepath.Join(binDir, "activate"))
	require.NoError(t, err)
	assert.Contains(t, string(patched), "VIRTUAL_ENV=\""+target+"\"\n")
	assert.NotContains(t, string(patched), "VIRTUAL_ENV=\""+envPath+"\"")
	// Indented assignments inside deactivate are left alone.
	assert.Contains(t, string(patched), "    unset VIRTUAL_ENV\n")
	assert.Contains(t, string(patched), "export VIRTUAL_ENV\n")
}

func TestLinker_PatchActivateMissingScript(t *testing.T) {
	target := filepath.Join(t.TempDir(), "current")
	require.Error(t, fs.NewLinker().PatchActivate(target))
}
