package cache_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/provenv/internal/adapters/cache"
	"go.trai.ch/provenv/internal/adapters/fs"
	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func newSelector(t *testing.T) *cache.Selector {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return cache.NewSelector(fs.NewIndexStore(), log)
}

// addEntry materializes one cache entry with an indexed environment and
// returns the environment path.
func addEntry(t *testing.T, cacheRoot, hash, envName string, packages domain.PackageSet) string {
	t.Helper()
	envPath := filepath.Join(cacheRoot, hash, envName)
	require.NoError(t, os.MkdirAll(envPath, 0o755))
	require.NoError(t, fs.NewIndexStore().Write(envPath, packages))
	return envPath
}

func TestSelector_MissingCacheRoot(t *testing.T) {
	sel, err := newSelector(t).SelectBest(filepath.Join(t.TempDir(), "absent"), "/target/venv", domain.NewPackageSet("a"))
	require.NoError(t, err)
	assert.Nil(t, sel)
}

func TestSelector_SubsetGate(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b", "c")

	eligible := addEntry(t, cacheRoot, "hash-x", "venv", domain.NewPackageSet("a", "b"))
	addEntry(t, cacheRoot, "hash-y", "venv", domain.NewPackageSet("a", "b", "d"))

	sel, err := newSelector(t).SelectBest(cacheRoot, filepath.Join(cacheRoot, "hash-new", "venv"), want)
	require.NoError(t, err)
	require.NotNil(t, sel)
	assert.Equal(t, eligible, sel.Path)
	assert.Equal(t, []string{"a", "b"}, sel.Overlap.Sorted())
}

func TestSelector_SkipsSelf(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b")

	self := addEntry(t, cacheRoot, "hash-self", "venv", want)

	sel, err := newSelector(t).SelectBest(cacheRoot, self, want)
	require.NoError(t, err)
	assert.Nil(t, sel)
}

func TestSelector_SkipsUnindexedCandidates(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b")

	// An environment exists but was never snapshotted: no index, not
	// trustworthy, not an empty package set.
	bare := filepath.Join(cacheRoot, "hash-bare", "venv")
	require.NoError(t, os.MkdirAll(bare, 0o755))

	sel, err := newSelector(t).SelectBest(cacheRoot, filepath.Join(cacheRoot, "hash-new", "venv"), want)
	require.NoError(t, err)
	assert.Nil(t, sel)
}

func TestSelector_MatchesEnvironmentBaseName(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b")

	// A sibling environment under the same hash must not be considered
	// for a differently-named target.
	addEntry(t, cacheRoot, "hash-x", "other-venv", domain.NewPackageSet("a"))

	sel, err := newSelector(t).SelectBest(cacheRoot, filepath.Join(cacheRoot, "hash-new", "venv"), want)
	require.NoError(t, err)
	assert.Nil(t, sel)
}

func TestSelector_DeterministicTieBreak(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b", "c", "d", "e")

	addEntry(t, cacheRoot, "hash-aaa", "venv", domain.NewPackageSet("a", "b", "c", "d", "e"))
	addEntry(t, cacheRoot, "hash-mmm", "venv", domain.NewPackageSet("a", "b", "c"))
	winner := addEntry(t, cacheRoot, "hash-zzz", "venv", domain.NewPackageSet("a", "b", "c", "d", "e"))

	selector := newSelector(t)
	self := filepath.Join(cacheRoot, "hash-new", "venv")
	for range 20 {
		sel, err := selector.SelectBest(cacheRoot, self, want)
		require.NoError(t, err)
		require.NotNil(t, sel)
		assert.Equal(t, winner, sel.Path)
	}
}

func TestSelector_ConcurrentWritersAndReaders(t *testing.T) {
	cacheRoot := t.TempDir()
	want := domain.NewPackageSet("a", "b", "c")
	self := filepath.Join(cacheRoot, "hash-self", "venv")

	// Independent provisioning runs share the cache root: writers add
	// entries while readers scan. Selection must never error or return a
	// candidate violating the subset gate.
	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			envPath := filepath.Join(cacheRoot, fmt.Sprintf("hash-%03d", i), "venv")
			if err := os.MkdirAll(envPath, 0o755); err != nil {
				return err
			}
			return fs.NewIndexStore().Write(envPath, domain.NewPackageSet("a", "b"))
		})
	}

	selector := newSelector(t)
	for range 8 {
		g.Go(func() error {
			sel, err := selector.SelectBest(cacheRoot, self, want)
			if err != nil {
				return err
			}
			if sel != nil && !sel.Overlap.SubsetOf(want) {
				return fmt.Errorf("overlap %v escapes requirement set", sel.Overlap.Sorted())
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}
