package config

import (
	"path/filepath"
	"testing"
)

// TestDefaultConfig verifies the documented defaults.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Rotation.MinDegrees != -90 || cfg.Rotation.MaxDegrees != 90 {
		t.Errorf("Expected rotation domain [-90, 90], got [%d, %d]",
			cfg.Rotation.MinDegrees, cfg.Rotation.MaxDegrees)
	}
	if cfg.Contour.InvalidSliceContours != 10 {
		t.Errorf("Expected invalid-slice threshold 10, got %d", cfg.Contour.InvalidSliceContours)
	}
	if cfg.Smoothing.Iterations != 5 || cfg.Smoothing.TimeStep != 0.125 || cfg.Smoothing.Conductance != 3.0 {
		t.Errorf("Unexpected smoothing defaults: %+v", cfg.Smoothing)
	}
}

// TestLoadConfigMissingFileReturnsDefaults checks that a nonexistent
// path yields the defaults without error.
func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Contour.InvalidSliceContours != DefaultConfig().Contour.InvalidSliceContours {
		t.Errorf("Missing file did not produce defaults")
	}
}

// TestSaveAndLoadRoundTrip writes a modified config and reads it back.
func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Contour.InvalidSliceContours = 15
	cfg.Contour.Color = "3daee9"
	cfg.Smoothing.Enabled = true
	cfg.Output.UseIndexNames = true

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if loaded.Contour.InvalidSliceContours != 15 {
		t.Errorf("Expected threshold 15, got %d", loaded.Contour.InvalidSliceContours)
	}
	if loaded.Contour.Color != "3daee9" {
		t.Errorf("Expected color 3daee9, got %q", loaded.Contour.Color)
	}
	if !loaded.Smoothing.Enabled || !loaded.Output.UseIndexNames {
		t.Errorf("Boolean settings did not round-trip: %+v", loaded)
	}
}
