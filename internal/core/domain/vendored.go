package domain

// VendoredFiles is a static list of precompiled artifacts shipped with a package.
// Paths are absolute.
type VendoredFiles struct {
	Frameworks []string
	Libraries  []string
}

// VendoredStaticFrameworks returns the vendored static framework binaries.
func (v VendoredFiles) VendoredStaticFrameworks() []string {
	return v.Frameworks
}

// VendoredStaticLibraries returns the vendored static libraries.
func (v VendoredFiles) VendoredStaticLibraries() []string {
	return v.Libraries
}

// All returns frameworks followed by libraries.
func (v VendoredFiles) All() []string {
	out := make([]string, 0, len(v.Frameworks)+len(v.Libraries))
	out = append(out, v.Frameworks...)
	return append(out, v.Libraries...)
}
