package domain

// ArchitecturePolicy selects how the architecture hint is computed.
type ArchitecturePolicy string

const (
	// ArchitecturePolicyFixed always uses DefaultArchitectures.
	ArchitecturePolicyFixed ArchitecturePolicy = "fixed"
	// ArchitecturePolicyIntersection narrows the default set to what every vendored binary provides.
	ArchitecturePolicyIntersection ArchitecturePolicy = "intersection"
)

// Manifest is the fully resolved input of one build, as loaded by the CLI layer.
type Manifest struct {
	Root          WorkspaceRoot
	Spec          PackageSpec
	Platform      Platform
	SourceDir     string
	UseFramework  bool
	Project       string
	Configuration string
	Architectures ArchitecturePolicy
	// ExtraArgs are appended to every build tool invocation.
	ExtraArgs []string
	// Environment holds variables set for the build tool, e.g. DEVELOPER_DIR.
	Environment map[string]string
	Vendored    VendoredFiles
}
