package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultArkanoidConfig().Validate(); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML should parse: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, DefaultArkanoidConfig())
	}
}

func TestLoadArkanoidFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadArkanoid("")
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("LoadArkanoid(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadArkanoidUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arkanoid")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "arkanoid.yaml"), []byte("gameplay:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid("")
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 7 {
		t.Errorf("Lives = %d, expected 7 from user config", cfg.Gameplay.Lives)
	}
}

func TestLoadArkanoidCustomYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := `
blocks:
  rows: 4
  cols: 8
gameplay:
  lives: 5
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}

	if cfg.Blocks.Rows != 4 || cfg.Blocks.Cols != 8 {
		t.Errorf("Blocks = %dx%d, expected 8x4", cfg.Blocks.Cols, cfg.Blocks.Rows)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	// Unset fields keep defaults
	if cfg.World.Width != 800 || cfg.Ball.Size != 20 {
		t.Errorf("Unset fields should keep defaults, got world.width=%d ball.size=%d", cfg.World.Width, cfg.Ball.Size)
	}
}

func TestLoadArkanoidCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	content := `
[world]
width = 640
height = 480

[ball]
speed_y = 9
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadArkanoid(path)
	if err != nil {
		t.Fatalf("LoadArkanoid() failed: %v", err)
	}

	if cfg.World.Width != 640 || cfg.World.Height != 480 {
		t.Errorf("World = %dx%d, expected 640x480", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Ball.SpeedY != 9 {
		t.Errorf("SpeedY = %d, expected 9", cfg.Ball.SpeedY)
	}
	if cfg.Blocks.Points != 100 {
		t.Errorf("Points = %d, expected default 100", cfg.Blocks.Points)
	}
}

func TestLoadArkanoidErrors(t *testing.T) {
	if _, err := LoadArkanoid(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadArkanoid(path); err == nil {
		t.Error("Malformed YAML should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultArkanoidConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	var cfg ArkanoidConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("Marshalled YAML should parse: %v", err)
	}
	if cfg != DefaultArkanoidConfig() {
		t.Errorf("Round trip = %+v, expected defaults", cfg)
	}
}

func TestValidateRejectsMalformedConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ArkanoidConfig)
	}{
		{"zero rows", func(c *ArkanoidConfig) { c.Blocks.Rows = 0 }},
		{"zero cols", func(c *ArkanoidConfig) { c.Blocks.Cols = 0 }},
		{"negative width", func(c *ArkanoidConfig) { c.World.Width = -800 }},
		{"zero height", func(c *ArkanoidConfig) { c.World.Height = 0 }},
		{"zero ball size", func(c *ArkanoidConfig) { c.Ball.Size = 0 }},
		{"zero vertical speed", func(c *ArkanoidConfig) { c.Ball.SpeedY = 0 }},
		{"inverted bounce range", func(c *ArkanoidConfig) { c.Ball.BounceMaxSpeed = 2 }},
		{"platform wider than world", func(c *ArkanoidConfig) { c.Platform.Width = 900 }},
		{"platform below world", func(c *ArkanoidConfig) { c.Platform.BottomOffset = 10 }},
		{"platform above world", func(c *ArkanoidConfig) { c.Platform.BottomOffset = 600 }},
		{"too many columns", func(c *ArkanoidConfig) { c.Blocks.Cols = 400 }},
		{"too many rows", func(c *ArkanoidConfig) { c.Blocks.Rows = 150 }},
		{"no lives", func(c *ArkanoidConfig) { c.Gameplay.Lives = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultArkanoidConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}
