package domain

// Config holds a provisioning run's settings as loaded from provenv.yaml.
type Config struct {
	// CacheRoot is the shared directory holding one subdirectory per
	// requirements-content hash.
	CacheRoot string

	// Environment is the base name of the environment directory inside a
	// cache entry. Distinguishes sibling environments built from the same
	// requirements hash.
	Environment string

	// Requirements is the path to the locked requirements manifest.
	Requirements string

	// Bootstrap is the path to the base bootstrap manifest installed with
	// force-reinstall before the full manifest. Empty skips the layer.
	Bootstrap string

	// Target, if set, is a stable path symlinked to the cache entry after a
	// successful run.
	Target string

	// PatchActivate rewrites the activate script under Target so a sourced
	// activate exports the target path rather than the cache leaf. Only
	// meaningful when Target is set.
	PatchActivate bool

	// NativeDeps catalogs the system packages each OS family needs before
	// the environment can build its wheels. Data only; installing them is
	// outside this tool.
	NativeDeps map[string][]string
}
