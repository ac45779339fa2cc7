package cli

import "ctest/internal/config"

// Flags holds command-line flags
type Flags struct {
	List        bool
	Match       string
	Progress    bool
	Browse      bool
	Color       string
	ColorOK     bool
	CrashReport bool
	BufferSize  int
	ConfigFile  string
}

// ToConfigFlags converts CLI flags and the optional suite prefix to config flags
func (f *Flags) ToConfigFlags(args []string) config.Flags {
	var suite string
	if len(args) > 0 {
		suite = args[0]
	}
	return config.Flags{
		Suite:       suite,
		Match:       f.Match,
		List:        f.List,
		Progress:    f.Progress,
		Browse:      f.Browse,
		Color:       f.Color,
		ColorOK:     f.ColorOK,
		CrashReport: f.CrashReport,
		BufferSize:  f.BufferSize,
		ConfigFile:  f.ConfigFile,
	}
}
