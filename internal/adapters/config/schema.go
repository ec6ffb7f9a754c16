package config

// Manifestfile represents the structure of the unifw.yaml configuration file.
type Manifestfile struct {
	Package       PackageDTO        `yaml:"package"`
	Platform      string            `yaml:"platform"`
	SourceDir     string            `yaml:"sourceDir"`
	UseFramework  *bool             `yaml:"useFramework"`
	Project       string            `yaml:"project"`
	Configuration string            `yaml:"configuration"`
	Architectures string            `yaml:"architectures"`
	ExtraArgs     []string          `yaml:"extraArgs"`
	Environment   map[string]string `yaml:"environment"`
	Vendored      VendoredDTO       `yaml:"vendored"`
}

// PackageDTO represents the package description.
type PackageDTO struct {
	Name          string              `yaml:"name"`
	Platforms     []string            `yaml:"platforms"`
	CompilerFlags map[string][]string `yaml:"compilerFlags"`
	License       LicenseDTO          `yaml:"license"`
}

// LicenseDTO names a license file or carries the license text inline.
type LicenseDTO struct {
	File string `yaml:"file"`
	Text string `yaml:"text"`
}

// VendoredDTO lists glob patterns of precompiled artifacts shipped with the package.
type VendoredDTO struct {
	Frameworks []string `yaml:"frameworks"`
	Libraries  []string `yaml:"libraries"`
}
