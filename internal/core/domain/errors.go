package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedEntry is returned when a requirements entry carries an
	// ambiguous VCS egg fragment and cannot be canonicalized.
	ErrMalformedEntry = zerr.New("malformed requirements entry")

	// ErrIndexNotFound is returned when an environment has no package index.
	// Such an environment must be treated as ineligible for cache reuse,
	// not as one with an empty package set.
	ErrIndexNotFound = zerr.New("package index not found")

	// ErrCloneFailed is returned when the clone tool is missing or exits
	// non-zero. Callers fall back to creating a fresh environment.
	ErrCloneFailed = zerr.New("environment clone failed")

	// ErrInstallFailed is returned when the package installer exits non-zero.
	ErrInstallFailed = zerr.New("package install failed")
)
