// Package venv shells out to the virtualenv tooling that materializes and
// clones environments.
package venv

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPython is the interpreter used when the config names none.
const DefaultPython = "python3"

// Tool implements ports.EnvironmentTool using the virtualenv CLI.
type Tool struct {
	logger ports.Logger
	python string
}

// NewTool creates a new Tool building environments with the given
// interpreter.
func NewTool(logger ports.Logger, python string) *Tool {
	if python == "" {
		python = DefaultPython
	}
	return &Tool{
		logger: logger,
		python: python,
	}
}

// Create materializes a fresh, empty environment at envPath.
func (t *Tool) Create(ctx context.Context, envPath string) error {
	if err := os.MkdirAll(filepath.Dir(envPath), 0o755); err != nil { //nolint:gosec // Shared cache tree
		return zerr.With(zerr.Wrap(err, "failed to create cache entry directory"), "env", envPath)
	}

	cmd := exec.CommandContext(ctx, "virtualenv", "-p", t.python, envPath) //nolint:gosec // Arguments derive from config
	cmd.Stdout = &logWriter{logger: t.logger}
	cmd.Stderr = &logWriter{logger: t.logger, warn: true}
	if err := cmd.Run(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create environment"), "env", envPath)
	}
	return nil
}

// Remove deletes the environment directory. Used for the clean-slate step
// that discards a stale, partially provisioned environment.
func (t *Tool) Remove(envPath string) error {
	if err := os.RemoveAll(envPath); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove environment"), "env", envPath)
	}
	return nil
}

// Cloner implements ports.EnvironmentCloner using the virtualenv-clone
// binary installed inside the source environment.
type Cloner struct {
	logger ports.Logger
}

// NewCloner creates a new Cloner.
func NewCloner(logger ports.Logger) *Cloner {
	return &Cloner{logger: logger}
}

// Clone copies the environment at srcPath to dstPath. A missing or failing
// clone tool yields domain.ErrCloneFailed; making a new environment instead
// is always safe.
func (c *Cloner) Clone(ctx context.Context, srcPath, dstPath string) error {
	cloneBin := filepath.Join(srcPath, "bin", "virtualenv-clone")
	if _, err := os.Stat(cloneBin); err != nil {
		return zerr.With(domain.ErrCloneFailed, "reason", "clone tool not present in source environment")
	}

	cmd := exec.CommandContext(ctx, cloneBin, srcPath, dstPath) //nolint:gosec // Paths derive from the cache layout
	cmd.Stdout = &logWriter{logger: c.logger}
	cmd.Stderr = &logWriter{logger: c.logger, warn: true}
	if err := cmd.Run(); err != nil {
		return zerr.With(domain.ErrCloneFailed, "source", srcPath)
	}
	return nil
}

// logWriter forwards a command's output to the logger line by line.
type logWriter struct {
	logger ports.Logger
	warn   bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if w.warn {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
