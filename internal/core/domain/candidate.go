package domain

import "sort"

// Candidate is a previously built environment considered as a clone source.
type Candidate struct {
	// Path is the environment's directory in the cache.
	Path string
	// Packages is the candidate's package index contents.
	Packages PackageSet
}

// Selection is the outcome of picking a clone source from the cache.
type Selection struct {
	// Path is the winning candidate's environment directory.
	Path string
	// Overlap is the packages shared between the candidate and the new
	// requirement set.
	Overlap PackageSet
}

// BestCandidate picks the clone source with the largest overlap against the
// requirement set want.
//
// A candidate is eligible only if its entire package set is a subset of want:
// it must never contain a package the new environment does not need, since
// that package cannot be safely carried along. Eligible candidates are ranked
// by overlap size; ties break on the lexicographically greatest path, so the
// winner is stable across runs given the same cache contents.
//
// Returns nil if no candidate is eligible.
func BestCandidate(candidates []Candidate, want PackageSet) *Selection {
	type ranked struct {
		size    int
		path    string
		overlap PackageSet
	}

	var eligible []ranked
	for _, c := range candidates {
		if !c.Packages.SubsetOf(want) {
			continue
		}
		overlap := want.Intersect(c.Packages)
		eligible = append(eligible, ranked{size: overlap.Len(), path: c.Path, overlap: overlap})
	}
	if len(eligible) == 0 {
		return nil
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].size != eligible[j].size {
			return eligible[i].size < eligible[j].size
		}
		return eligible[i].path < eligible[j].path
	})

	best := eligible[len(eligible)-1]
	return &Selection{Path: best.path, Overlap: best.overlap}
}
