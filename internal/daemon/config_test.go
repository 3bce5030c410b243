package daemon

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 7431 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 7431)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Telemetry.Prometheus should default to true")
	}
	if cfg.Progression.DefaultHeroName != "Hero" {
		t.Errorf("DefaultHeroName = %q, want %q", cfg.Progression.DefaultHeroName, "Hero")
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("TASKHERO_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 7431 {
		t.Errorf("missing file should fall back to defaults, port = %d", cfg.API.Port)
	}
}

func TestSaveLoadConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKHERO_HOME", dir)

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Progression.DefaultHeroName = "Dev"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if got.API.Port != 9999 {
		t.Errorf("Port = %d, want 9999", got.API.Port)
	}
	if got.Progression.DefaultHeroName != "Dev" {
		t.Errorf("DefaultHeroName = %q, want %q", got.Progression.DefaultHeroName, "Dev")
	}
}

func TestTaskheroHome_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKHERO_HOME", dir)

	if got := TaskheroHome(); got != dir {
		t.Errorf("TaskheroHome() = %q, want %q", got, dir)
	}
	if got := filepath.Base(DefaultConfig().Logging.File); got != "taskhero.log" {
		t.Errorf("log file = %q, want taskhero.log", got)
	}
}
