package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	MainVersion = "v1.0.0"

	// Subcommands
	Generate  = "v1.0.0"
	Profile   = "v0.2.0"
	Benchmark = "v1.0.0"
	Check     = "v1.0.0"
)
