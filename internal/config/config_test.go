package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samaamohammed255-droid/leaf-grace/internal/game"
)

func TestLoadParamsWithoutFile(t *testing.T) {
	t.Setenv(EnvTuningFile, "")
	params, err := LoadParams()
	if err != nil {
		t.Fatalf("LoadParams: %v", err)
	}
	if params != game.DefaultParams() {
		t.Fatalf("params without tuning file = %+v, want defaults", params)
	}
}

func TestPresets(t *testing.T) {
	easy, err := Tuning{Preset: PresetEasy}.Params()
	if err != nil {
		t.Fatalf("easy preset: %v", err)
	}
	if easy.MaxMultiplier != 2 || easy.RampSeconds != 15 {
		t.Fatalf("easy preset = %+v", easy)
	}

	hard, err := Tuning{Preset: PresetHard}.Params()
	if err != nil {
		t.Fatalf("hard preset: %v", err)
	}
	if hard.MaxMultiplier != 4 || hard.MinSpawnInterval != 300*time.Millisecond {
		t.Fatalf("hard preset = %+v", hard)
	}

	normal, err := Tuning{Preset: PresetNormal}.Params()
	if err != nil {
		t.Fatalf("normal preset: %v", err)
	}
	if normal != game.DefaultParams() {
		t.Fatalf("normal preset = %+v, want defaults", normal)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := (Tuning{Preset: "nightmare"}).Params(); err == nil {
		t.Fatalf("unknown preset accepted")
	}
}

func TestFileOverridesWinOverPreset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := `
preset: hard
geometry:
  leaf_diameter: 64
difficulty:
  max_multiplier: 5
ripple_lifetime_ms: 900
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write tuning file: %v", err)
	}

	params, err := LoadParamsFile(path)
	if err != nil {
		t.Fatalf("LoadParamsFile: %v", err)
	}
	if params.LeafDiameter != 64 {
		t.Fatalf("leaf diameter = %v, want file override 64", params.LeafDiameter)
	}
	if params.MaxMultiplier != 5 {
		t.Fatalf("max multiplier = %v, want file override 5", params.MaxMultiplier)
	}
	if params.RippleLifetime != 900*time.Millisecond {
		t.Fatalf("ripple lifetime = %v, want 900ms", params.RippleLifetime)
	}
	// Untouched fields keep the hard preset
	if params.RampSeconds != 6 {
		t.Fatalf("ramp seconds = %v, want hard preset 6", params.RampSeconds)
	}
}

func TestMissingFileFails(t *testing.T) {
	if _, err := LoadParamsFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("missing tuning file accepted")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LEAF_TEST_KEY", "set")
	if got := GetEnv("LEAF_TEST_KEY", "fallback"); got != "set" {
		t.Fatalf("GetEnv set = %q", got)
	}
	if got := GetEnv("LEAF_TEST_KEY_ABSENT", "fallback"); got != "fallback" {
		t.Fatalf("GetEnv unset = %q", got)
	}
}
