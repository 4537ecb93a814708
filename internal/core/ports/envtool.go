package ports

import "context"

// EnvironmentTool materializes and removes runtime environments on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=envtool.go -destination=mocks/mock_envtool.go -package=mocks
type EnvironmentTool interface {
	// Create materializes a fresh, empty environment at envPath.
	Create(ctx context.Context, envPath string) error

	// Remove deletes the environment directory at envPath. Removing a path
	// that does not exist is not an error.
	Remove(envPath string) error
}

// EnvironmentCloner performs a byte-level copy of an environment directory.
type EnvironmentCloner interface {
	// Clone copies the environment at srcPath to dstPath. Returns
	// domain.ErrCloneFailed if the clone tool is missing or exits
	// non-zero; callers treat this as non-fatal and fall back to fresh
	// creation.
	Clone(ctx context.Context, srcPath, dstPath string) error
}
