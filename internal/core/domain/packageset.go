// Package domain contains the core types for environment provisioning.
package domain

import "slices"

// PackageSet is a set of canonical package names. Equality of members is
// exact string match; ordering is irrelevant and only introduced when a set
// is serialized.
type PackageSet map[string]struct{}

// NewPackageSet creates a PackageSet from the given names.
func NewPackageSet(names ...string) PackageSet {
	s := make(PackageSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Add inserts a name into the set.
func (s PackageSet) Add(name string) {
	s[name] = struct{}{}
}

// Contains reports whether name is a member of the set.
func (s PackageSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of packages in the set.
func (s PackageSet) Len() int {
	return len(s)
}

// SubsetOf reports whether every package in s is also in other.
func (s PackageSet) SubsetOf(other PackageSet) bool {
	for n := range s {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Intersect returns the packages present in both s and other.
func (s PackageSet) Intersect(other PackageSet) PackageSet {
	res := make(PackageSet)
	for n := range s {
		if other.Contains(n) {
			res.Add(n)
		}
	}
	return res
}

// Diff returns the packages in s that are not in other.
func (s PackageSet) Diff(other PackageSet) PackageSet {
	res := make(PackageSet)
	for n := range s {
		if !other.Contains(n) {
			res.Add(n)
		}
	}
	return res
}

// Equal reports whether s and other contain exactly the same packages.
func (s PackageSet) Equal(other PackageSet) bool {
	return len(s) == len(other) && s.SubsetOf(other)
}

// Sorted returns the package names in lexicographic order.
func (s PackageSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
