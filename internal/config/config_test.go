package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.EnvFile != DefaultEnvFile {
		t.Errorf("expected EnvFile %s, got %s", DefaultEnvFile, cfg.EnvFile)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}

	if cfg.Version != Version {
		t.Errorf("expected Version %s, got %s", Version, cfg.Version)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		flags    Flags
		progress bool
		noColor  bool
		level    string
	}{
		{
			name:  "defaults",
			flags: Flags{EnvFile: ""},
			level: DefaultLogLevel,
		},
		{
			name:     "environment overrides defaults",
			env:      map[string]string{EnvProgress: "true", EnvNoColor: "1", EnvLogLevel: "debug"},
			progress: true,
			noColor:  true,
			level:    "debug",
		},
		{
			name:     "flags override environment",
			env:      map[string]string{EnvLogLevel: "debug"},
			flags:    Flags{Progress: true, LogLevel: "error"},
			progress: true,
			level:    "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for _, key := range []string{EnvProgress, EnvNoColor, EnvLogLevel, EnvEnvFile} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(tt.flags)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Progress != tt.progress {
				t.Errorf("expected Progress %v, got %v", tt.progress, cfg.Progress)
			}
			if cfg.NoColor != tt.noColor {
				t.Errorf("expected NoColor %v, got %v", tt.noColor, cfg.NoColor)
			}
			if cfg.LogLevel != tt.level {
				t.Errorf("expected LogLevel %s, got %s", tt.level, cfg.LogLevel)
			}
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	t.Setenv(EnvProgress, "")
	t.Setenv(EnvLogLevel, "")

	dir := t.TempDir()
	envFile := filepath.Join(dir, "ytf.env")
	if err := os.WriteFile(envFile, []byte("YTF_LOG_LEVEL=info\n"), 0644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	// godotenv.Load never overrides variables that are already set.
	os.Unsetenv(EnvLogLevel)

	cfg, err := Load(Flags{EnvFile: envFile})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel info, got %s", cfg.LogLevel)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit env file", func(t *testing.T) {
		if _, err := Load(Flags{EnvFile: "/non/existent/.env"}); err == nil {
			t.Error("expected error for missing env file")
		}
	})

	t.Run("bad boolean", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv(EnvProgress, "maybe")
		if _, err := Load(Flags{}); err == nil {
			t.Error("expected error for invalid boolean")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv(EnvLogLevel, "")
		if _, err := Load(Flags{LogLevel: "loud"}); err == nil {
			t.Error("expected error for invalid log level")
		}
	})
}
