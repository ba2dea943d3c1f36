package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Errorf("embedded defaults differ from hardcoded:\n got %+v\nwant %+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("rocks:\n  count: 6\n  speed: 1.5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Rocks.Count != 6 || cfg.Rocks.Speed != 1.5 {
		t.Errorf("overrides not applied: %+v", cfg.Rocks)
	}
	if cfg.Rocks.Scale != 8 || cfg.Ship.MaxSpeed != 4 || cfg.Controls.Fire != "j" {
		t.Error("fields missing from the file should keep their defaults")
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("empty input should parse: %v", err)
	}
	if cfg != DefaultAsteroidsConfig() {
		t.Error("empty input should yield the defaults")
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	if _, err := Parse([]byte("ship:\n  max_sped: 3\n")); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AsteroidsConfig)
		field  string
	}{
		{"stationary rocks", func(c *AsteroidsConfig) { c.Rocks.Speed = 0 }, "rocks.speed"},
		{"negative rock speed", func(c *AsteroidsConfig) { c.Rocks.Speed = -1 }, "rocks.speed"},
		{"zero scale", func(c *AsteroidsConfig) { c.Rocks.Scale = 0 }, "rocks.scale"},
		{"zero lifetime", func(c *AsteroidsConfig) { c.Bullets.LifetimeMs = 0 }, "bullets.lifetime_ms"},
		{"zero bullet cap", func(c *AsteroidsConfig) { c.Bullets.MaxLive = 0 }, "bullets.max_live"},
		{"full drag", func(c *AsteroidsConfig) { c.Ship.RetardationStep = 1 }, "ship.retardation_step"},
		{"empty key", func(c *AsteroidsConfig) { c.Controls.Fire = "" }, "controls.fire"},
		{"duplicate key", func(c *AsteroidsConfig) { c.Controls.Right = "a" }, "controls.right"},
		{"fire on quit", func(c *AsteroidsConfig) { c.Controls.Fire = "q" }, "controls.fire"},
		{"fire on restart", func(c *AsteroidsConfig) { c.Controls.Fire = "r" }, "controls.fire"},
		{"thrust on ctrl+c", func(c *AsteroidsConfig) { c.Controls.Thrust = "ctrl+c" }, "controls.thrust"},
		{"left on right arrow", func(c *AsteroidsConfig) { c.Controls.Left = "right" }, "controls.left"},
		{"right on space", func(c *AsteroidsConfig) { c.Controls.Right = " " }, "controls.right"},
		{"zero pixel scale", func(c *AsteroidsConfig) { c.World.PixelScale = 0 }, "world.pixel_scale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name %s", err, tc.field)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Rocks.Speed = 0
	cfg.Bullets.MaxLive = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"rocks.speed", "bullets.max_live"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should name %s", err, field)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("bullets:\n  max_live: 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Bullets.MaxLive != 8 {
		t.Errorf("MaxLive = %d, expected 8", cfg.Bullets.MaxLive)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("rocks:\n  speed: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults.
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if source != "embedded" || cfg != DefaultAsteroidsConfig() {
		t.Errorf("expected embedded defaults, got source %q", source)
	}

	// Local configs directory.
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", FileName), []byte("rocks:\n  count: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rocks.Count != 2 {
		t.Errorf("local config not used, count = %d", cfg.Rocks.Count)
	}

	// User config wins over the local one.
	if err := os.MkdirAll(filepath.Join(home, ".asteroids"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(home, ".asteroids", FileName), []byte("rocks:\n  count: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rocks.Count != 3 {
		t.Errorf("user config not used, count = %d", cfg.Rocks.Count)
	}

	// A broken user file falls through to the next source.
	if err := os.WriteFile(filepath.Join(home, ".asteroids", FileName), []byte("rocks: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err = Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Rocks.Count != 2 {
		t.Errorf("broken user config should fall through, count = %d", cfg.Rocks.Count)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultAsteroidsConfig()
	want.Rocks.Count = 7

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != want {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, want)
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	if cfg.Bullets.Lifetime().Milliseconds() != 1500 {
		t.Error("Lifetime should be 1500ms")
	}
	if cfg.Bullets.FireInterval().Milliseconds() != 100 {
		t.Error("FireInterval should be 100ms")
	}
	if cfg.Timing.MinFrameInterval().Milliseconds() != 10 {
		t.Error("MinFrameInterval should be 10ms")
	}
	if cfg.Controls.Hold().Milliseconds() != 500 {
		t.Error("Hold should be 500ms")
	}
}
