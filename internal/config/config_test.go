package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML(), FormatYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultHopConfig() {
		t.Errorf("embedded defaults drifted from DefaultHopConfig:\n got %+v\nwant %+v", cfg, DefaultHopConfig())
	}
}

func TestParsePartialYAML(t *testing.T) {
	data := []byte("timing:\n  removal_interval_ms: 5000\nscoring:\n  switch_points: 25\n")

	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Timing.RemovalIntervalMS != 5000 {
		t.Errorf("RemovalIntervalMS = %d, expected 5000", cfg.Timing.RemovalIntervalMS)
	}
	if cfg.Scoring.SwitchPoints != 25 {
		t.Errorf("SwitchPoints = %d, expected 25", cfg.Scoring.SwitchPoints)
	}
	// Untouched keys keep their defaults
	if cfg.Physics.Gravity != 0.6 {
		t.Errorf("Gravity = %v, expected default 0.6", cfg.Physics.Gravity)
	}
	if cfg.Timing.FadeMS != 600 {
		t.Errorf("FadeMS = %d, expected default 600", cfg.Timing.FadeMS)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
[beds]
count = 4

[physics]
move_speed = 5.5
`)

	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Beds.Count != 4 {
		t.Errorf("Beds.Count = %d, expected 4", cfg.Beds.Count)
	}
	if cfg.Physics.MoveSpeed != 5.5 {
		t.Errorf("MoveSpeed = %v, expected 5.5", cfg.Physics.MoveSpeed)
	}
	if cfg.World.Width != 1280 {
		t.Errorf("World.Width = %v, expected default 1280", cfg.World.Width)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero beds", "beds:\n  count: 0\n"},
		{"negative fade", "timing:\n  fade_ms: -1\n"},
		{"friction of one", "physics:\n  friction: 1\n"},
		{"alpha above one", "landing:\n  min_alpha: 1.5\n"},
		{"negative clamp", "timing:\n  max_frame_delta_ms: -5\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.data), FormatYAML)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("world: [unclosed"), FormatYAML); err == nil {
		t.Error("malformed YAML should fail")
	}
	if _, err := Parse([]byte("[world\nwidth ="), FormatTOML); err == nil {
		t.Error("malformed TOML should fail")
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[scoring]\nswitch_points = 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Scoring.SwitchPoints != 3 {
		t.Errorf("SwitchPoints = %d, expected 3", cfg.Scoring.SwitchPoints)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// No user config: embedded defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultHopConfig() {
		t.Error("Load() without files should return defaults")
	}

	dir := filepath.Join(home, ".mattresshop", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "hop.yaml"), []byte("beds:\n  count: 3\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Beds.Count != 3 {
		t.Errorf("Beds.Count = %d, expected user value 3", cfg.Beds.Count)
	}
}

func TestEncodeTOMLIsParseable(t *testing.T) {
	cfg := DefaultHopConfig()
	cfg.Beds.Count = 8

	var buf bytes.Buffer
	if err := Encode(&buf, cfg, FormatTOML); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "[beds]") {
		t.Errorf("TOML output should contain a [beds] table:\n%s", buf.String())
	}

	parsed, err := Parse(buf.Bytes(), FormatTOML)
	if err != nil {
		t.Fatalf("Parse(encoded) failed: %v", err)
	}
	if parsed.Beds.Count != 8 {
		t.Errorf("Beds.Count = %d after re-parse, expected 8", parsed.Beds.Count)
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatFromPath("a/b/hop.TOML") != FormatTOML {
		t.Error("FormatFromPath should detect .toml case-insensitively")
	}
	if FormatFromPath("hop.yml") != FormatYAML {
		t.Error("FormatFromPath should default to YAML")
	}
	if f, err := ParseFormat("yml"); err != nil || f != FormatYAML {
		t.Errorf("ParseFormat(yml) = %q, %v", f, err)
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}
}

func TestTimingDurations(t *testing.T) {
	timing := DefaultHopConfig().Timing

	if timing.RemovalInterval().Milliseconds() != 10000 {
		t.Errorf("RemovalInterval() = %v", timing.RemovalInterval())
	}
	if timing.Fade().Milliseconds() != 600 {
		t.Errorf("Fade() = %v", timing.Fade())
	}
	if timing.MaxFrameDelta().Milliseconds() != 250 {
		t.Errorf("MaxFrameDelta() = %v", timing.MaxFrameDelta())
	}
}
