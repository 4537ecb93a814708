package fs_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provenv/internal/adapters/fs"
	"go.trai.ch/provenv/internal/core/domain"
)

func TestLineageLog_FreshEnvironmentBlock(t *testing.T) {
	envPath := t.TempDir()
	log := fs.NewLineageLog()

	require.NoError(t, log.Append(envPath, "", nil, domain.NewPackageSet("b", "a")))

	data, err := os.ReadFile(fs.LogPath(envPath))
	require.NoError(t, err)
	assert.Equal(t, envPath+"\nNew packages:\n- a\n- b\n\n", string(data))
}

func TestLineageLog_ClonedEnvironmentBlock(t *testing.T) {
	envPath := t.TempDir()
	log := fs.NewLineageLog()

	copied := domain.NewPackageSet("dj", "tornado")
	fresh := domain.NewPackageSet("pika")
	require.NoError(t, log.Append(envPath, "/cache/abc/venv", copied, fresh))

	data, err := os.ReadFile(fs.LogPath(envPath))
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "Copied from /cache/abc/venv:\n- dj\n- tornado\n")
	assert.Contains(t, content, "New packages:\n- pika\n")
}

func TestLineageLog_AppendOnly(t *testing.T) {
	envPath := t.TempDir()
	log := fs.NewLineageLog()

	require.NoError(t, log.Append(envPath, "", nil, domain.NewPackageSet("a")))

	first, err := os.ReadFile(fs.LogPath(envPath))
	require.NoError(t, err)

	require.NoError(t, log.Append(envPath, "/cache/p/venv", domain.NewPackageSet("a"), domain.NewPackageSet("b")))
	require.NoError(t, log.Append(envPath, "/cache/q/venv", domain.NewPackageSet("b"), domain.NewPackageSet("c")))

	data, err := os.ReadFile(fs.LogPath(envPath))
	require.NoError(t, err)

	// Earlier blocks are untouched and blocks stay in append order.
	content := string(data)
	assert.True(t, strings.HasPrefix(content, string(first)))
	assert.Equal(t, 3, strings.Count(content, "New packages:\n"))
	assert.Less(t, strings.Index(content, "/cache/p/venv"), strings.Index(content, "/cache/q/venv"))
}

func TestLineageLog_CopyFromComposesTransitively(t *testing.T) {
	parent := t.TempDir()
	child := t.TempDir()
	log := fs.NewLineageLog()

	require.NoError(t, log.Append(parent, "", nil, domain.NewPackageSet("a")))
	require.NoError(t, log.CopyFrom(parent, child))
	require.NoError(t, log.Append(child, parent, domain.NewPackageSet("a"), domain.NewPackageSet("b")))

	data, err := os.ReadFile(fs.LogPath(child))
	require.NoError(t, err)

	// The child's log begins with the parent's full history.
	parentData, err := os.ReadFile(fs.LogPath(parent))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), string(parentData)))
	assert.Contains(t, string(data), "Copied from "+parent+":")
}

func TestLineageLog_CopyFromMissingParentLog(t *testing.T) {
	child := t.TempDir()
	log := fs.NewLineageLog()

	require.NoError(t, log.CopyFrom(t.TempDir(), child))

	_, err := os.Stat(fs.LogPath(child))
	assert.True(t, os.IsNotExist(err))
}
