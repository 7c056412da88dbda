package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/orbitview/internal/frame"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Name != "figure8" {
		t.Errorf("expected figure8, got %s", cfg.Name)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("listed preset %s missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
		if _, err := cfg.FrameSelector(); err != nil {
			t.Errorf("preset %s frame: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
}

func TestPresetCopyIsolation(t *testing.T) {
	a := GetPreset("figure8")
	a.Bodies[0].Mass = 99

	if GetPreset("figure8").Bodies[0].Mass == 99 {
		t.Error("mutating a preset copy leaked into the table")
	}
}

func TestFrameSelector(t *testing.T) {
	cfg := GetPreset("inner")

	sel, err := cfg.FrameSelector()
	if err != nil {
		t.Fatal(err)
	}
	if sel.Kind() != frame.BodyRelative || sel.BodyIndex() != 0 {
		t.Errorf("expected body frame 0 for sun, got %+v", sel)
	}

	cfg.Frame = "barycenter"
	if sel, _ = cfg.FrameSelector(); sel.Kind() != frame.Barycentric {
		t.Error("expected barycentric selector")
	}

	cfg.Frame = "2"
	if sel, _ = cfg.FrameSelector(); sel.Kind() != frame.BodyRelative || sel.BodyIndex() != 2 {
		t.Error("expected numeric body index")
	}

	cfg.Frame = "pluto"
	if _, err = cfg.FrameSelector(); err == nil {
		t.Error("expected error for unknown frame")
	}
}

func TestBuildSystem(t *testing.T) {
	cfg := GetPreset("figure8")

	sys, err := cfg.BuildSystem()
	if err != nil {
		t.Fatal(err)
	}
	if len(sys.Bodies) != 3 {
		t.Errorf("expected 3 bodies, got %d", len(sys.Bodies))
	}
	if sys.Bodies[0].Trail.Cap() != cfg.Trail {
		t.Errorf("trail cap %d, want %d", sys.Bodies[0].Trail.Cap(), cfg.Trail)
	}
	if sys.Bary.Trail.Cap() != cfg.Trail {
		t.Error("barycenter trail capacity differs from bodies")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.yaml")
	cfg := GetPreset("binary")

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}
	back, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if back.Name != cfg.Name || len(back.Bodies) != len(cfg.Bodies) {
		t.Errorf("round trip mismatch: %+v", back)
	}
	if back.Bodies[2].ID != "probe" {
		t.Errorf("body order lost: %+v", back.Bodies)
	}
}

func TestValidate(t *testing.T) {
	cfg := GetPreset("figure8")
	cfg.Scale = 0
	if cfg.Validate() == nil {
		t.Error("expected error for zero scale")
	}

	cfg = GetPreset("figure8")
	cfg.Bodies = nil
	if cfg.Validate() == nil {
		t.Error("expected error for empty body list")
	}
}
