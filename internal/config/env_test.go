package config

import "testing"

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("HUNT_BASE_ADDRESS", "http://override:7000")
	t.Setenv("HUNT_EXPORT_DIR", "/var/exports")
	t.Setenv("HUNT_LOG_LEVEL", "warn")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.BaseAddress != "http://override:7000" {
		t.Errorf("expected BaseAddress override, got %q", cfg.BaseAddress)
	}
	if cfg.Export.OutputDir != "/var/exports" {
		t.Errorf("expected Export.OutputDir override, got %q", cfg.Export.OutputDir)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel override, got %q", cfg.LogLevel)
	}
}

func TestApplyEnvOverrides_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("HUNT_BASE_ADDRESS", "")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.BaseAddress != DefaultBaseAddress {
		t.Errorf("empty env var must not clear the default, got %q", cfg.BaseAddress)
	}
}

func TestEnvOverridesBeatFileValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir+"/.hunt.yaml", "base_address: http://from-file:8000\n")
	t.Setenv("HUNT_BASE_ADDRESS", "http://from-env:9000")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BaseAddress != "http://from-env:9000" {
		t.Errorf("expected env to beat file, got %q", cfg.BaseAddress)
	}
}
