package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvNoColors, EnvColor, EnvColorOK, EnvCrashReport, EnvBufferSize} {
		t.Setenv(name, "")
	}
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Color != DefaultColor {
		t.Errorf("expected Color %s, got %s", DefaultColor, cfg.Color)
	}

	if cfg.BufferSize != DefaultBufferSize {
		t.Errorf("expected BufferSize %d, got %d", DefaultBufferSize, cfg.BufferSize)
	}

	if cfg.ConfigFile != DefaultConfigFile {
		t.Errorf("expected ConfigFile %s, got %s", DefaultConfigFile, cfg.ConfigFile)
	}
}

func TestConfig_LoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is ignored", func(t *testing.T) {
		cfg := New()
		if err := cfg.LoadFile(filepath.Join(dir, "nope.yaml")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Color != DefaultColor {
			t.Errorf("expected defaults to survive, got color %s", cfg.Color)
		}
	})

	t.Run("values override defaults", func(t *testing.T) {
		path := writeFile(t, dir, "ctest.yaml", "color: never\ncolor_ok: true\ncrash_report: true\nbuffer_size: 128\n")
		cfg := New()
		if err := cfg.LoadFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Color != ColorNever || !cfg.ColorOK || !cfg.CrashReport || cfg.BufferSize != 128 {
			t.Errorf("unexpected config: %+v", cfg)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeFile(t, dir, "bad.yaml", "color: [unterminated\n")
		if err := New().LoadFile(path); err == nil {
			t.Error("expected error for invalid yaml")
		}
	})
}

func TestConfig_LoadEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(*Config) bool
		wantErr bool
	}{
		{
			name:  "no colors",
			env:   map[string]string{EnvNoColors: "1"},
			check: func(c *Config) bool { return c.Color == ColorNever },
		},
		{
			name:  "explicit color wins over no colors",
			env:   map[string]string{EnvNoColors: "1", EnvColor: ColorAlways},
			check: func(c *Config) bool { return c.Color == ColorAlways },
		},
		{
			name:  "booleans and size",
			env:   map[string]string{EnvColorOK: "true", EnvCrashReport: "1", EnvBufferSize: "64"},
			check: func(c *Config) bool { return c.ColorOK && c.CrashReport && c.BufferSize == 64 },
		},
		{
			name:    "bad boolean",
			env:     map[string]string{EnvColorOK: "maybe"},
			wantErr: true,
		},
		{
			name:    "bad size",
			env:     map[string]string{EnvBufferSize: "big"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := New()
			err := cfg.LoadEnv("")
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config: %+v", cfg)
			}
		})
	}
}

func TestConfig_LoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, and
	// clearEnv sets them to "", so unset the one under test.
	os.Unsetenv(EnvBufferSize)
	t.Cleanup(func() { os.Unsetenv(EnvBufferSize) })

	path := writeFile(t, t.TempDir(), ".env", EnvBufferSize+"=256\n")
	cfg := New()
	if err := cfg.LoadEnv(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BufferSize != 256 {
		t.Errorf("expected buffer size from .env, got %d", cfg.BufferSize)
	}
}

func TestLoad_FlagsOverride(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, t.TempDir(), "ctest.yaml", "color: always\nbuffer_size: 100\n")

	cfg, err := Load(Flags{ConfigFile: path, Color: ColorNever, BufferSize: 50, Progress: true, Suite: "Math"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Color != ColorNever {
		t.Errorf("expected flag color, got %s", cfg.Color)
	}
	if cfg.BufferSize != 50 {
		t.Errorf("expected flag buffer size, got %d", cfg.BufferSize)
	}
	if !cfg.Progress {
		t.Error("expected progress from flag")
	}
	if cfg.Flags.Suite != "Math" {
		t.Errorf("expected suite flag to be kept, got %q", cfg.Flags.Suite)
	}
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	if _, err := Load(Flags{ConfigFile: "-", Color: "sometimes"}); err == nil {
		t.Error("expected error for invalid color mode")
	}
}

func TestConfig_UseColor(t *testing.T) {
	var buf bytes.Buffer

	cfg := New()
	cfg.Color = ColorAlways
	if !cfg.UseColor(&buf) {
		t.Error("always should color any writer")
	}

	cfg.Color = ColorNever
	if cfg.UseColor(os.Stdout) {
		t.Error("never should not color")
	}

	cfg.Color = ColorAuto
	if cfg.UseColor(&buf) {
		t.Error("auto should not color a non-terminal writer")
	}
}
