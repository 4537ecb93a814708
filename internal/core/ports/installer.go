package ports

import "context"

// Installer runs the external package installer against an environment.
// Both modes are hash-verified; a non-zero exit signals failure.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// InstallBootstrap installs the base bootstrap manifest with
	// force-reinstall, so the tooling layer is identical regardless of
	// what a cloned parent carried.
	InstallBootstrap(ctx context.Context, envPath, manifestPath string) error

	// InstallManifest installs the locked manifest without dependency
	// resolution.
	InstallManifest(ctx context.Context, envPath, manifestPath string) error
}
