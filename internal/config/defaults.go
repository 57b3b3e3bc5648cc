package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the built-in configuration. It mirrors
// defaults/invaders.yaml and backs it up if the embedded file is unreadable.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Screen: ScreenConfig{
			BgColor:   core.ColorDefault,
			MinWidth:  30,
			MinHeight: 12,
		},
		Ship: ShipConfig{
			Sprite: `/^\`,
			Color:  core.ColorBrightCyan,
			Speed:  0.5,
			Limit:  3,
		},
		Bullet: BulletConfig{
			Width:   1,
			Height:  1,
			Glyph:   "|",
			Color:   core.ColorBrightYellow,
			Speed:   0.6,
			Allowed: 3,
		},
		Alien: AlienConfig{
			Sprite: "<o>",
			Color:  core.ColorBrightGreen,
			Speed:  0.15,
		},
		Fleet: FleetConfig{
			DropSpeed: 1,
		},
		Scoring: ScoringConfig{
			AlienPoints:  50,
			SpeedupScale: 1.1,
		},
		Gameplay: GameplayConfig{
			ShipHitPause: 500 * time.Millisecond,
		},
		Input: InputConfig{
			KeyRelease: 180 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `--print-config`.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
