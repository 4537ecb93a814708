// Package pip shells out to an environment's pip binary.
package pip

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// CustomCAEnvVar names a CA bundle pip must trust when talking to a package
// mirror behind a corporate proxy.
const CustomCAEnvVar = "CUSTOM_CA_CERTIFICATES"

// Installer implements ports.Installer using the pip CLI inside the
// environment being provisioned.
type Installer struct {
	logger ports.Logger
	caOnce sync.Once
	caErr  error
}

// NewInstaller creates a new Installer.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger}
}

// InstallBootstrap installs the base bootstrap manifest. Force-reinstall
// keeps the tooling layer identical regardless of what a cloned parent
// carried.
func (i *Installer) InstallBootstrap(ctx context.Context, envPath, manifestPath string) error {
	return i.run(ctx, envPath, "--force-reinstall", "--require-hashes", "--requirement", manifestPath)
}

// InstallManifest installs the locked manifest without dependency
// resolution; every pin is hash-verified.
func (i *Installer) InstallManifest(ctx context.Context, envPath, manifestPath string) error {
	return i.run(ctx, envPath, "--no-deps", "--require-hashes", "--requirement", manifestPath)
}

func (i *Installer) run(ctx context.Context, envPath string, args ...string) error {
	if certPath := os.Getenv(CustomCAEnvVar); certPath != "" {
		if err := i.configureCustomCA(certPath); err != nil {
			return err
		}
	}

	pip := filepath.Join(envPath, "bin", "pip")

	//nolint:gosec // envPath derives from the cache layout
	cmd := exec.CommandContext(ctx, pip, append([]string{"install"}, args...)...)
	cmd.Stdout = &logWriter{logger: i.logger}
	cmd.Stderr = &logWriter{logger: i.logger, warn: true}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		installErr := zerr.With(domain.ErrInstallFailed, "env", envPath)
		installErr = zerr.With(installErr, "cause", err.Error())
		return zerr.With(installErr, "exit_code", exitCode)
	}
	return nil
}

// configureCustomCA points pip's global cert setting at the configured CA
// bundle. Runs once per process; all install calls share the same pip.conf.
func (i *Installer) configureCustomCA(certPath string) error {
	i.caOnce.Do(func() {
		i.logger.Info("configuring pip to use custom CA certificates")
		i.caErr = writePipConfCert(certPath)
	})
	return i.caErr
}

// writePipConfCert sets cert under [global] in ~/.pip/pip.conf, preserving
// whatever else the file holds.
func writePipConfCert(certPath string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return zerr.Wrap(err, "failed to locate home directory for pip.conf")
	}
	confDir := filepath.Join(home, ".pip")
	confPath := filepath.Join(confDir, "pip.conf")

	if err := os.MkdirAll(confDir, 0o755); err != nil { //nolint:gosec // User config directory
		return zerr.Wrap(err, "failed to create pip config directory")
	}

	existing, err := os.ReadFile(confPath) //nolint:gosec // User config file
	if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return zerr.Wrap(err, "failed to read pip.conf")
	}

	updated := setConfCert(string(existing), certPath)
	if err := os.WriteFile(confPath, []byte(updated), 0o644); err != nil { //nolint:gosec // User config file
		return zerr.Wrap(err, "failed to write pip.conf")
	}
	return nil
}

// setConfCert replaces an existing cert entry or inserts one under the
// [global] section, appending the section when the file lacks it.
func setConfCert(conf, certPath string) string {
	certLine := "cert = " + certPath

	if conf == "" {
		return "[global]\n" + certLine + "\n"
	}

	lines := strings.Split(conf, "\n")
	for i, line := range lines {
		key, _, found := strings.Cut(line, "=")
		if found && strings.TrimSpace(key) == "cert" {
			lines[i] = certLine
			return strings.Join(lines, "\n")
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "[global]" {
			lines = append(lines[:i+1], append([]string{certLine}, lines[i+1:]...)...)
			return strings.Join(lines, "\n")
		}
	}

	return strings.TrimRight(conf, "\n") + "\n[global]\n" + certLine + "\n"
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
