package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for a test run
type Config struct {
	// Output settings
	Color    string // auto, always or never
	ColorOK  bool   // Print [OK] in green
	Progress bool   // Show a progress bar instead of one line per passing test
	Browse   bool   // Open the failure browser after the run

	// Execution settings
	CrashReport bool // Print a marker before re-raising unexpected panics
	BufferSize  int  // Per-test message buffer capacity

	// Files consulted by Load
	ConfigFile string
	EnvFile    string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	Suite       string // Positional suite-name prefix
	Match       string
	List        bool
	Progress    bool
	Browse      bool
	Color       string
	ColorOK     bool
	CrashReport bool
	BufferSize  int
	ConfigFile  string
}

// fileConfig mirrors the YAML file; pointers tell "unset" from false
type fileConfig struct {
	Color       string `yaml:"color"`
	ColorOK     *bool  `yaml:"color_ok"`
	Progress    *bool  `yaml:"progress"`
	CrashReport *bool  `yaml:"crash_report"`
	BufferSize  int    `yaml:"buffer_size"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Color:      DefaultColor,
		BufferSize: DefaultBufferSize,
		ConfigFile: DefaultConfigFile,
		EnvFile:    DefaultEnvFile,
	}
}

// Load creates a config from defaults, the YAML file, the environment and
// finally the given flags, each overriding the previous source.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	if flags.ConfigFile != "" {
		cfg.ConfigFile = flags.ConfigFile
	}
	if err := cfg.LoadFile(cfg.ConfigFile); err != nil {
		return nil, err
	}
	if err := cfg.LoadEnv(cfg.EnvFile); err != nil {
		return nil, err
	}
	cfg.ApplyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads YAML settings from path. A missing file is not an error.
func (c *Config) LoadFile(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.Color != "" {
		c.Color = fc.Color
	}
	if fc.ColorOK != nil {
		c.ColorOK = *fc.ColorOK
	}
	if fc.Progress != nil {
		c.Progress = *fc.Progress
	}
	if fc.CrashReport != nil {
		c.CrashReport = *fc.CrashReport
	}
	if fc.BufferSize > 0 {
		c.BufferSize = fc.BufferSize
	}
	return nil
}

// LoadEnv loads envFile into the environment (if present) and applies the
// CTEST_* variables.
func (c *Config) LoadEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			// .env file might not exist, that's okay - use environment variables
			_ = err
		}
	}

	if os.Getenv(EnvNoColors) != "" {
		c.Color = ColorNever
	}
	if v := os.Getenv(EnvColor); v != "" {
		c.Color = v
	}
	if err := envBool(EnvColorOK, &c.ColorOK); err != nil {
		return err
	}
	if err := envBool(EnvCrashReport, &c.CrashReport); err != nil {
		return err
	}
	if v := os.Getenv(EnvBufferSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBufferSize, err)
		}
		c.BufferSize = n
	}
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = b
	return nil
}

// ApplyFlags overrides settings with the flags that were set
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Color != "" {
		c.Color = flags.Color
	}
	if flags.ColorOK {
		c.ColorOK = true
	}
	if flags.Progress {
		c.Progress = true
	}
	if flags.Browse {
		c.Browse = true
	}
	if flags.CrashReport {
		c.CrashReport = true
	}
	if flags.BufferSize > 0 {
		c.BufferSize = flags.BufferSize
	}
}

// Validate checks the settings for values the runner cannot use
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q: must be one of %s, %s, %s", c.Color, ColorAuto, ColorAlways, ColorNever)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("invalid buffer size %d: must be positive", c.BufferSize)
	}
	return nil
}

// UseColor reports whether output written to w should carry color codes.
// In auto mode only terminals get color.
func (c *Config) UseColor(w io.Writer) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
