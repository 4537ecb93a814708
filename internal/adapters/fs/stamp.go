package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const stampFilename = "success-stamp"

// StampPath returns the success marker path for an environment.
func StampPath(envPath string) string {
	return filepath.Join(envPath, stampFilename)
}

// StampStore implements ports.StampStore using the success-stamp sentinel
// file. Presence is all that matters; content is irrelevant.
type StampStore struct{}

// NewStampStore creates a new StampStore.
func NewStampStore() *StampStore {
	return &StampStore{}
}

// Exists reports whether the environment carries a success marker.
func (s *StampStore) Exists(envPath string) bool {
	_, err := os.Stat(StampPath(envPath))
	return err == nil
}

// Write marks the environment as fully provisioned.
func (s *StampStore) Write(envPath string) error {
	if err := os.WriteFile(StampPath(envPath), nil, 0o644); err != nil { //nolint:gosec // Presence-only sentinel
		return zerr.With(zerr.Wrap(err, "failed to write success stamp"), "env", envPath)
	}
	return nil
}

// Remove deletes the success marker, e.g. one copied in by the clone tool.
func (s *StampStore) Remove(envPath string) error {
	if err := os.Remove(StampPath(envPath)); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to remove success stamp"), "env", envPath)
	}
	return nil
}

// Linker implements ports.Linker with ln -nsf semantics: the target is
// replaced, never followed.
type Linker struct{}

// NewLinker creates a new Linker.
func NewLinker() *Linker {
	return &Linker{}
}

// Link replaces targetPath with a symlink to envPath.
func (l *Linker) Link(envPath, targetPath string) error {
	if err := os.Remove(targetPath); err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, "failed to replace target link"), "target", targetPath)
	}
	if err := os.Symlink(envPath, targetPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to link target"), "target", targetPath)
	}
	return nil
}

// PatchActivate rewrites every VIRTUAL_ENV= assignment in the linked
// environment's bin/activate to targetPath. All other lines are preserved;
// the write goes through the symlink into the cache leaf.
func (l *Linker) PatchActivate(targetPath string) error {
	scriptPath := filepath.Join(targetPath, "bin", "activate")

	info, err := os.Stat(scriptPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat activate script"), "target", targetPath)
	}
	data, err := os.ReadFile(scriptPath) //nolint:gosec // Path derives from config
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read activate script"), "target", targetPath)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "VIRTUAL_ENV=") {
			lines[i] = `VIRTUAL_ENV="` + targetPath + `"`
		}
	}

	if err := os.WriteFile(scriptPath, []byte(strings.Join(lines, "\n")), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to rewrite activate script"), "target", targetPath)
	}
	return nil
}
