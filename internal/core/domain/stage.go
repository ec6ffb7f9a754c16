package domain

// Stage names one failable step of a build session.
type Stage string

const (
	// StageCompileSimulator is the compiler invocation for the simulator environment.
	StageCompileSimulator Stage = "compile-simulator"
	// StageCompileDevice is the compiler invocation for the device environment.
	StageCompileDevice Stage = "compile-device"
	// StageCombine merges the per-environment binaries into one multi-architecture binary.
	StageCombine Stage = "combine"
	// StageInspect reads the architecture slices of a binary.
	StageInspect Stage = "inspect"
	// StageAssemble covers the file-system steps of bundle assembly.
	StageAssemble Stage = "assemble"
)

// StageForEnvironment returns the compile stage for env.
func StageForEnvironment(env Environment) Stage {
	if env == EnvironmentSimulator {
		return StageCompileSimulator
	}
	return StageCompileDevice
}
