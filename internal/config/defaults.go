package config

const (
	// DefaultConfigFile is the optional YAML file read from the working directory
	DefaultConfigFile = ".ctest.yaml"
	// DefaultEnvFile is the optional dotenv file read from the working directory
	DefaultEnvFile = ".env"
	// DefaultBufferSize is the per-test message buffer capacity in bytes
	DefaultBufferSize = 4096
	// DefaultColor is the default color mode
	DefaultColor = ColorAuto
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables understood by Load
const (
	EnvNoColors    = "CTEST_NO_COLORS"
	EnvColor       = "CTEST_COLOR"
	EnvColorOK     = "CTEST_COLOR_OK"
	EnvCrashReport = "CTEST_CRASH_REPORT"
	EnvBufferSize  = "CTEST_BUFFER_SIZE"
)
