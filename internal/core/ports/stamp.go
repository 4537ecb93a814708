package ports

// StampStore manages an environment's success marker: the presence-only
// sentinel that flags it as fully and successfully provisioned. Writing the
// stamp is the only operation that marks an environment safe for future
// cache reuse.
//
//go:generate go run go.uber.org/mock/mockgen -source=stamp.go -destination=mocks/mock_stamp.go -package=mocks
type StampStore interface {
	Exists(envPath string) bool
	Write(envPath string) error

	// Remove deletes the stamp, e.g. one inherited from a cloned parent
	// before the new environment's own install has succeeded. Removing a
	// missing stamp is not an error.
	Remove(envPath string) error
}

// Linker points a stable target path at an environment in the cache.
type Linker interface {
	// Link replaces targetPath with a symlink to envPath.
	Link(envPath, targetPath string) error

	// PatchActivate rewrites the VIRTUAL_ENV assignment in the linked
	// environment's bin/activate so a sourced activate exports targetPath
	// instead of the cache leaf the symlink resolves to.
	PatchActivate(targetPath string) error
}
