package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/zerr"
)

const logFilename = "setup-venv.log"

// LogPath returns the lineage log path for an environment.
func LogPath(envPath string) string {
	return filepath.Join(envPath, logFilename)
}

// LineageLog implements ports.LineageLog using the setup-venv.log file.
// The log is append-only; blocks are never edited or removed.
type LineageLog struct{}

// NewLineageLog creates a new LineageLog.
func NewLineageLog() *LineageLog {
	return &LineageLog{}
}

// Append writes one lineage block for the environment at envPath.
func (l *LineageLog) Append(envPath, parent string, copied, fresh domain.PackageSet) error {
	f, err := os.OpenFile(LogPath(envPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec // Path derives from the cache layout
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open lineage log"), "env", envPath)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	var b strings.Builder
	b.WriteString(envPath)
	b.WriteString("\n")
	if parent != "" && copied.Len() > 0 {
		b.WriteString("Copied from ")
		b.WriteString(parent)
		b.WriteString(":\n")
		for _, name := range copied.Sorted() {
			b.WriteString("- ")
			b.WriteString(name)
			b.WriteString("\n")
		}
	}
	b.WriteString("New packages:\n")
	for _, name := range fresh.Sorted() {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// One write per block keeps a concurrent reader from seeing a torn entry.
	if _, err := f.WriteString(b.String()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to append lineage entry"), "env", envPath)
	}
	return nil
}

// CopyFrom copies the parent's whole log to the child so lineage composes
// transitively across generations of cloning.
func (l *LineageLog) CopyFrom(parentPath, childPath string) error {
	data, err := os.ReadFile(LogPath(parentPath)) //nolint:gosec // Path derives from the cache layout
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to read parent lineage log"), "parent", parentPath)
	}

	if err := os.WriteFile(LogPath(childPath), data, 0o644); err != nil { //nolint:gosec // Log is world-readable diagnostics
		return zerr.With(zerr.Wrap(err, "failed to copy lineage log"), "child", childPath)
	}
	return nil
}
