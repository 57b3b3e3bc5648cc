package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	var cfg InvadersConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML = %+v, want %+v", cfg, DefaultInvadersConfig())
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, `
ship:
  limit: 7
  color: Red
alien:
  speed: 0.25
gameplay:
  ship_hit_pause: 1s
`)

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}

	def := DefaultInvadersConfig()
	if cfg.Ship.Limit != 7 {
		t.Errorf("ship.limit = %d, want 7", cfg.Ship.Limit)
	}
	if cfg.Ship.Color != core.ColorRed {
		t.Errorf("ship.color = %v, want red", cfg.Ship.Color)
	}
	if cfg.Alien.Speed != 0.25 {
		t.Errorf("alien.speed = %g, want 0.25", cfg.Alien.Speed)
	}
	if cfg.Gameplay.ShipHitPause != time.Second {
		t.Errorf("ship_hit_pause = %v, want 1s", cfg.Gameplay.ShipHitPause)
	}
	// Untouched fields keep their defaults
	if cfg.Ship.Sprite != def.Ship.Sprite || cfg.Bullet != def.Bullet || cfg.Scoring != def.Scoring {
		t.Errorf("unnamed fields changed: %+v", cfg)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"unknown color", "alien:\n  color: chartreuse\n", "unknown color"},
		{"bad yaml", "ship: [\n", "failed to parse"},
		{"zero bullets", "bullet:\n  allowed: 0\n", "bullet.allowed"},
		{"slow speedup", "scoring:\n  speedup_scale: 0.5\n", "speedup_scale"},
		{"wide glyph", "bullet:\n  glyph: \"||\"\n", "bullet.glyph"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadInvaders(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if cfg != DefaultInvadersConfig() {
				t.Error("failed load should return defaults")
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, err := LoadInvaders("")
	if err != nil {
		t.Fatalf("LoadInvaders: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local ./configs file
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "invaders.yaml"), []byte("ship:\n  limit: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Ship.Limit != 4 {
		t.Errorf("local config: ship.limit = %d, want 4", cfg.Ship.Limit)
	}

	// User config wins over local
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "invaders.yaml"), []byte("ship:\n  limit: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadInvaders("")
	if cfg.Ship.Limit != 9 {
		t.Errorf("user config: ship.limit = %d, want 9", cfg.Ship.Limit)
	}
}

func TestApplyPresets(t *testing.T) {
	def := DefaultInvadersConfig()

	tests := []struct {
		preset  DifficultyPreset
		limit   int
		allowed int
		speedup float64
	}{
		{DifficultyEasy, 5, 5, def.Scoring.SpeedupScale},
		{DifficultyNormal, def.Ship.Limit, def.Bullet.Allowed, def.Scoring.SpeedupScale},
		{DifficultyHard, 2, 2, def.Scoring.SpeedupScale},
		{DifficultyFixed, def.Ship.Limit, def.Bullet.Allowed, 1.0},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			ApplyInvadersPreset(&cfg, tt.preset)
			if cfg.Ship.Limit != tt.limit {
				t.Errorf("limit = %d, want %d", cfg.Ship.Limit, tt.limit)
			}
			if cfg.Bullet.Allowed != tt.allowed {
				t.Errorf("allowed = %d, want %d", cfg.Bullet.Allowed, tt.allowed)
			}
			if cfg.Scoring.SpeedupScale != tt.speedup {
				t.Errorf("speedup = %g, want %g", cfg.Scoring.SpeedupScale, tt.speedup)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q): %v", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/x.db")
	if got := GetEnv(EnvDBPath, "fallback"); got != "/tmp/x.db" {
		t.Errorf("GetEnv = %q", got)
	}
	if got := GetEnv("INVADERS_SURELY_UNSET", "fallback"); got != "fallback" {
		t.Errorf("GetEnv fallback = %q", got)
	}
}
