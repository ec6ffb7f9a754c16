package domain

// Environment is the target build environment of one compiler invocation.
type Environment int

const (
	// EnvironmentDevice targets physical hardware.
	EnvironmentDevice Environment = iota
	// EnvironmentSimulator targets the simulator.
	EnvironmentSimulator
)

// String returns the lowercase name of the environment.
func (e Environment) String() string {
	switch e {
	case EnvironmentSimulator:
		return "simulator"
	default:
		return "device"
	}
}

// BuildDirName is the name of the build-output directory for the environment,
// relative to the workspace root.
func (e Environment) BuildDirName() string {
	switch e {
	case EnvironmentSimulator:
		return "build-simulator"
	default:
		return "build"
	}
}
