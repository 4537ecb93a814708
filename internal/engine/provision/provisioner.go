// Package provision implements the environment provisioning engine.
//
// A run is strictly sequential: compute the requirement set and the
// environment identity, short-circuit on an existing success stamp, otherwise
// start from a clean slate, clone the best cache candidate or create a fresh
// environment, write the package index, install, and stamp. Concurrency only
// exists across independent runs sharing the cache directory; two runs
// racing on the same unbuilt identity may duplicate work but cannot corrupt
// state, because every file they touch lives under their own cache leaf and
// the index write is an atomic replace.
package provision

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/provenv/internal/core/domain"
	"go.trai.ch/provenv/internal/core/ports"
	"go.trai.ch/zerr"
)

// Provisioner sequences the canonicalizer, cache selector, external tools,
// and metadata stores into one provisioning run.
type Provisioner struct {
	selector  ports.CacheSelector
	index     ports.IndexStore
	lineage   ports.LineageLog
	installer ports.Installer
	envTool   ports.EnvironmentTool
	cloner    ports.EnvironmentCloner
	stamps    ports.StampStore
	linker    ports.Linker
	logger    ports.Logger
	telemetry ports.Telemetry
	retry     domain.RetryPolicy
}

// New creates a new Provisioner with the default install retry policy.
func New(
	selector ports.CacheSelector,
	index ports.IndexStore,
	lineage ports.LineageLog,
	installer ports.Installer,
	envTool ports.EnvironmentTool,
	cloner ports.EnvironmentCloner,
	stamps ports.StampStore,
	linker ports.Linker,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Provisioner {
	return &Provisioner{
		selector:  selector,
		index:     index,
		lineage:   lineage,
		installer: installer,
		envTool:   envTool,
		cloner:    cloner,
		stamps:    stamps,
		linker:    linker,
		logger:    logger,
		telemetry: telemetry,
		retry:     domain.DefaultInstallRetry,
	}
}

// SetRetryPolicy overrides the install retry policy. Tests use this to
// drive deterministic failure sequences.
func (p *Provisioner) SetRetryPolicy(policy domain.RetryPolicy) {
	p.retry = policy
}

// Result describes where an environment ended up and how it was obtained.
type Result struct {
	// Path is the environment's directory in the cache.
	Path string
	// Reused reports that a success stamp already existed and no work was
	// done.
	Reused bool
	// ClonedFrom is the parent environment's path when the run started
	// from a cache candidate, empty otherwise.
	ClonedFrom string
	// Packages is the requirement set the environment was provisioned for.
	Packages domain.PackageSet
}

// Provision builds (or reuses) the environment for cfg's requirements
// manifest and returns its cache path.
func (p *Provisioner) Provision(ctx context.Context, cfg *domain.Config) (*Result, error) {
	manifest, err := os.ReadFile(cfg.Requirements) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read requirements manifest")
	}

	want, err := domain.Canonicalize(string(manifest))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to canonicalize requirements")
	}

	id := domain.ComputeEnvironmentID(manifest)
	envPath := filepath.Join(cfg.CacheRoot, id, cfg.Environment)

	if p.stamps.Exists(envPath) {
		_, v := p.telemetry.Record(ctx, "environment "+id)
		v.Cached()
		v.Complete(nil)
		p.logger.Info("using cached environment " + envPath)
		if err := p.link(envPath, cfg); err != nil {
			return nil, err
		}
		return &Result{Path: envPath, Reused: true, Packages: want}, nil
	}

	clonedFrom, err := p.build(ctx, envPath, want, cfg)
	if err != nil {
		return nil, err
	}

	// The stamp is the only write marking an environment safe for reuse,
	// so it comes after everything else has succeeded.
	if err := p.stamps.Write(envPath); err != nil {
		return nil, err
	}
	if err := p.link(envPath, cfg); err != nil {
		return nil, err
	}

	return &Result{Path: envPath, ClonedFrom: clonedFrom, Packages: want}, nil
}

// build takes an unstamped environment from clean slate to fully installed.
// Returns the clone parent's path, or empty when the environment was created
// fresh.
func (p *Provisioner) build(ctx context.Context, envPath string, want domain.PackageSet, cfg *domain.Config) (string, error) {
	// A left-over directory from an interrupted run must not be trusted.
	if err := p.envTool.Remove(envPath); err != nil {
		return "", err
	}

	clonedFrom, err := p.cloneOrCreate(ctx, envPath, want, cfg.CacheRoot)
	if err != nil {
		return "", err
	}

	// The index records intent, not what the clone happened to contain:
	// the install step below reconciles actual contents to match.
	if err := p.index.Write(envPath, want); err != nil {
		return "", err
	}

	if err := p.install(ctx, envPath, cfg); err != nil {
		return "", err
	}
	return clonedFrom, nil
}

// cloneOrCreate tries the cache first and falls back to a fresh environment.
// Cache-layer failures degrade to the slow path; they are never fatal.
func (p *Provisioner) cloneOrCreate(ctx context.Context, envPath string, want domain.PackageSet, cacheRoot string) (string, error) {
	_, v := p.telemetry.Record(ctx, "select cache candidate")
	sel, err := p.selector.SelectBest(cacheRoot, envPath, want)
	v.Complete(err)
	if err != nil {
		p.logger.Warn("cache selection failed, creating fresh environment")
		p.logger.Error(err)
		sel = nil
	}

	if sel != nil {
		parent, ok, err := p.clone(ctx, sel, envPath, want)
		if err != nil {
			return "", err
		}
		if ok {
			return parent, nil
		}
	}

	_, v = p.telemetry.Record(ctx, "create environment")
	err = p.envTool.Create(ctx, envPath)
	v.Complete(err)
	if err != nil {
		return "", err
	}
	if err := p.lineage.Append(envPath, "", nil, want); err != nil {
		return "", err
	}
	return "", nil
}

// clone copies the selected candidate into place. Reports ok=false when the
// clone tool is missing or fails, leaving the caller to create a fresh
// environment instead. A non-nil error is fatal.
func (p *Provisioner) clone(ctx context.Context, sel *domain.Selection, envPath string, want domain.PackageSet) (string, bool, error) {
	p.logger.Info("copying packages from " + sel.Path)

	_, v := p.telemetry.Record(ctx, "clone "+sel.Path)
	err := p.cloner.Clone(ctx, sel.Path, envPath)
	v.Complete(err)
	if err != nil {
		p.logger.Warn("environment clone failed, creating fresh environment")
		p.logger.Error(err)
		return "", false, nil
	}

	// The clone tool copies the parent's success stamp. If the upcoming
	// install failed, the environment would be falsely marked complete, so
	// the stamp goes now and is only rewritten after install success. A
	// removal failure is fatal: falling back would leave the inherited
	// stamp on the cloned tree, and a later run would trust it.
	if err := p.stamps.Remove(envPath); err != nil {
		return "", false, zerr.Wrap(err, "failed to remove inherited success stamp")
	}

	if err := p.lineage.CopyFrom(sel.Path, envPath); err != nil {
		p.logger.Error(err)
	}
	if err := p.lineage.Append(envPath, sel.Path, sel.Overlap, want.Diff(sel.Overlap)); err != nil {
		p.logger.Error(err)
	}
	return sel.Path, true, nil
}

// install runs the bootstrap and manifest installs under the bounded retry
// policy. The final failure is returned as-is; no stamp is ever written for
// it.
func (p *Provisioner) install(ctx context.Context, envPath string, cfg *domain.Config) error {
	attempts := p.retry.Attempts()

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		_, v := p.telemetry.Record(ctx, "install packages")
		err = p.installOnce(ctx, envPath, cfg)
		v.Complete(err)
		if err == nil {
			return nil
		}
		if attempt < attempts {
			p.logger.Warn("package install failed, retrying")
		}
	}
	return err
}

func (p *Provisioner) installOnce(ctx context.Context, envPath string, cfg *domain.Config) error {
	if cfg.Bootstrap != "" {
		if err := p.installer.InstallBootstrap(ctx, envPath, cfg.Bootstrap); err != nil {
			return err
		}
	}
	return p.installer.InstallManifest(ctx, envPath, cfg.Requirements)
}

// link publishes the environment at the configured target path and, when
// asked, rewrites the activate script so a sourced activate exports the
// target path rather than the cache leaf.
func (p *Provisioner) link(envPath string, cfg *domain.Config) error {
	if cfg.Target == "" {
		return nil
	}
	if err := p.linker.Link(envPath, cfg.Target); err != nil {
		return err
	}
	if cfg.PatchActivate {
		return p.linker.PatchActivate(cfg.Target)
	}
	return nil
}
