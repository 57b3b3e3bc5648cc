// Package config provides YAML-based game configuration loading and
// difficulty presets for the invaders game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// InvadersConfig contains all tunables for the invaders game.
// Speeds are in cells per tick.
type InvadersConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Alien    AlienConfig    `yaml:"alien"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Input    InputConfig    `yaml:"input"`
}

// ScreenConfig defines the play area appearance and minimum size.
type ScreenConfig struct {
	BgColor   core.Color `yaml:"bg_color"`
	MinWidth  int        `yaml:"min_width"`
	MinHeight int        `yaml:"min_height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Sprite string     `yaml:"sprite"`
	Color  core.Color `yaml:"color"`
	Speed  float64    `yaml:"speed"`
	Limit  int        `yaml:"limit"` // Ships in reserve at the start of a game
}

// BulletConfig defines the player's projectiles.
type BulletConfig struct {
	Width   int        `yaml:"width"`
	Height  int        `yaml:"height"`
	Glyph   string     `yaml:"glyph"`
	Color   core.Color `yaml:"color"`
	Speed   float64    `yaml:"speed"`
	Allowed int        `yaml:"allowed"` // Maximum bullets in flight
}

// AlienConfig defines a single fleet member.
type AlienConfig struct {
	Sprite string     `yaml:"sprite"`
	Color  core.Color `yaml:"color"`
	Speed  float64    `yaml:"speed"`
}

// FleetConfig defines how the fleet descends.
type FleetConfig struct {
	DropSpeed int `yaml:"drop_speed"` // Rows dropped on each edge bounce
}

// ScoringConfig defines points and level escalation.
type ScoringConfig struct {
	AlienPoints  int     `yaml:"alien_points"`
	SpeedupScale float64 `yaml:"speedup_scale"` // Applied to speeds and points per level clear
}

// GameplayConfig defines timing rules.
type GameplayConfig struct {
	ShipHitPause time.Duration `yaml:"ship_hit_pause"`
}

// InputConfig tunes terminal input. Terminals report key presses only, so
// a held direction is released after KeyRelease passes without a repeat.
type InputConfig struct {
	KeyRelease time.Duration `yaml:"key_release"`
}

// Validate reports configuration values the game cannot run with.
func (c InvadersConfig) Validate() error {
	var errs []error

	if utf8.RuneCountInString(c.Ship.Sprite) == 0 {
		errs = append(errs, errors.New("ship.sprite must not be empty"))
	}
	if utf8.RuneCountInString(c.Alien.Sprite) == 0 {
		errs = append(errs, errors.New("alien.sprite must not be empty"))
	}
	if utf8.RuneCountInString(c.Bullet.Glyph) != 1 {
		errs = append(errs, errors.New("bullet.glyph must be a single character"))
	}
	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		errs = append(errs, errors.New("bullet.width and bullet.height must be positive"))
	}
	if c.Bullet.Allowed <= 0 {
		errs = append(errs, errors.New("bullet.allowed must be positive"))
	}
	if c.Ship.Speed <= 0 || c.Bullet.Speed <= 0 || c.Alien.Speed <= 0 {
		errs = append(errs, errors.New("ship, bullet and alien speeds must be positive"))
	}
	if c.Ship.Limit < 0 {
		errs = append(errs, errors.New("ship.limit must not be negative"))
	}
	if c.Fleet.DropSpeed <= 0 {
		errs = append(errs, errors.New("fleet.drop_speed must be positive"))
	}
	if c.Scoring.SpeedupScale < 1 {
		errs = append(errs, fmt.Errorf("scoring.speedup_scale must be >= 1, got %g", c.Scoring.SpeedupScale))
	}
	if c.Gameplay.ShipHitPause < 0 || c.Input.KeyRelease < 0 {
		errs = append(errs, errors.New("durations must not be negative"))
	}

	return errors.Join(errs...)
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty maps a CLI value to a preset. Empty means no preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Alien.Speed *= 0.75
		cfg.Bullet.Allowed = 5
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Alien.Speed *= 1.3
		cfg.Bullet.Allowed = 2
	case DifficultyFixed:
		// Levels still advance, but the fleet never speeds up
		cfg.Scoring.SpeedupScale = 1.0
	}
}
