package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// versionOperators are the comparison operators that may suffix a pinned
// requirements entry. An entry is truncated at the first occurrence of each.
var versionOperators = []string{"~=", "==", "!=", "<", ">"}

const eggFragment = "#egg="

// Canonicalize turns the text of a locked requirements manifest into the set
// of canonical package names it pins.
//
// Each non-empty entry yields one name: VCS entries contribute the text after
// their #egg= fragment, version operators truncate the entry at their first
// occurrence, and the surviving name is trimmed and lowercased. Entries
// starting with '#' are comments and are skipped.
//
// Returns ErrMalformedEntry if an entry contains more than one #egg=
// fragment, since the package name is then ambiguous.
func Canonicalize(text string) (PackageSet, error) {
	set := make(PackageSet)
	for _, line := range strings.Split(text, "\n") {
		entry := strings.TrimSpace(line)
		if entry == "" || strings.HasPrefix(entry, "#") {
			continue
		}

		if strings.Contains(entry, eggFragment) {
			parts := strings.Split(entry, eggFragment)
			if len(parts) != 2 {
				return nil, zerr.With(ErrMalformedEntry, "entry", entry)
			}
			entry = parts[1]
		}

		for _, op := range versionOperators {
			if i := strings.Index(entry, op); i >= 0 {
				entry = entry[:i]
			}
		}

		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		set.Add(strings.ToLower(entry))
	}
	return set, nil
}

// SerializeRequirements renders a package set back into manifest form, one
// name per line in sorted order. Canonicalize(SerializeRequirements(s))
// yields s again.
func SerializeRequirements(set PackageSet) string {
	var b strings.Builder
	for _, name := range set.Sorted() {
		b.WriteString(name)
		b.WriteString("\n")
	}
	return b.String()
}
