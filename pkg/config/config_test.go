package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Imaging.Nside != 64 {
		t.Errorf("default nside = %d, want 64", cfg.Imaging.Nside)
	}
	if !cfg.Imaging.FastMath {
		t.Error("fast math should default on")
	}
	if cfg.Imaging.NumWorkers <= 0 {
		t.Errorf("default worker count = %d, want > 0", cfg.Imaging.NumWorkers)
	}
	if cfg.Output.Width != 4000 {
		t.Errorf("default width = %d, want 4000", cfg.Output.Width)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig on missing file: %v", err)
	}
	if cfg.Imaging.Nside != DefaultConfig().Imaging.Nside {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := []byte("imaging:\n  nside: 128\n  useRealOnly: true\n  fastMath: false\noutput:\n  width: 1000\n")
	if err := os.WriteFile(path, body, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Imaging.Nside != 128 {
		t.Errorf("nside = %d, want 128", cfg.Imaging.Nside)
	}
	if !cfg.Imaging.UseRealOnly || cfg.Imaging.FastMath {
		t.Error("boolean overrides not applied")
	}
	if cfg.Output.Width != 1000 {
		t.Errorf("width = %d, want 1000", cfg.Output.Width)
	}
	// Untouched fields keep their defaults
	if !cfg.Output.ShowColorbar {
		t.Error("unset field lost its default")
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("imaging: ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.Imaging.Nside = 32
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Imaging.Nside != 32 {
		t.Errorf("round-tripped nside = %d, want 32", loaded.Imaging.Nside)
	}
}
