package domain

import (
	"slices"
	"strings"
)

// ArchitectureSet is an ordered set of instruction-set architecture identifiers.
type ArchitectureSet []string

// DefaultArchitectures is the fixed set requested from the compiler.
func DefaultArchitectures() ArchitectureSet {
	return ArchitectureSet{"x86_64", "arm64", "armv7", "armv7s", "i386"}
}

// Contains reports whether arch is in the set.
func (s ArchitectureSet) Contains(arch string) bool {
	return slices.Contains(s, arch)
}

// Intersect keeps the members of s that also appear in other, preserving the order of s.
func (s ArchitectureSet) Intersect(other []string) ArchitectureSet {
	out := make(ArchitectureSet, 0, len(s))
	for _, a := range s {
		if slices.Contains(other, a) && !out.Contains(a) {
			out = append(out, a)
		}
	}
	return out
}

// String joins the set with single spaces, the form the compiler expects.
func (s ArchitectureSet) String() string {
	return strings.Join(s, " ")
}
