package invaders

import (
	"math"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Settings holds the game's tunables. The static part is fixed for the
// lifetime of a screen size; the dynamic part is reset at the start of
// every game and escalated on every level clear.
type Settings struct {
	// Screen
	ScreenWidth  int
	ScreenHeight int
	BgColor      core.Color
	TickRate     int

	// Ship
	ShipArt   Art
	ShipColor core.Color
	ShipLimit int

	// Bullets
	BulletWidth    int
	BulletHeight   int
	BulletGlyph    rune
	BulletColor    core.Color
	BulletsAllowed int

	// Aliens
	AlienArt       Art
	AlienColor     core.Color
	FleetDropSpeed int

	// Escalation and timing
	SpeedupScale float64
	ShipHitPause time.Duration

	// Dynamic settings
	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDirection int // 1 moves right, -1 moves left
	AlienPoints    int

	baseShipSpeed   float64
	baseBulletSpeed float64
	baseAlienSpeed  float64
	baseAlienPoints int
}

// NewSettings builds settings for the given screen from the loaded config.
func NewSettings(cfg config.InvadersConfig, rt core.RuntimeConfig) *Settings {
	glyph, _ := utf8.DecodeRuneInString(cfg.Bullet.Glyph)

	s := &Settings{
		ScreenWidth:  rt.ScreenW,
		ScreenHeight: rt.ScreenH,
		BgColor:      cfg.Screen.BgColor,
		TickRate:     rt.TickRate,

		ShipArt:   ParseArt(cfg.Ship.Sprite),
		ShipColor: cfg.Ship.Color,
		ShipLimit: cfg.Ship.Limit,

		BulletWidth:    cfg.Bullet.Width,
		BulletHeight:   cfg.Bullet.Height,
		BulletGlyph:    glyph,
		BulletColor:    cfg.Bullet.Color,
		BulletsAllowed: cfg.Bullet.Allowed,

		AlienArt:       ParseArt(cfg.Alien.Sprite),
		AlienColor:     cfg.Alien.Color,
		FleetDropSpeed: cfg.Fleet.DropSpeed,

		SpeedupScale: cfg.Scoring.SpeedupScale,
		ShipHitPause: cfg.Gameplay.ShipHitPause,

		baseShipSpeed:   cfg.Ship.Speed,
		baseBulletSpeed: cfg.Bullet.Speed,
		baseAlienSpeed:  cfg.Alien.Speed,
		baseAlienPoints: cfg.Scoring.AlienPoints,
	}
	s.InitializeDynamicSettings()
	return s
}

// InitializeDynamicSettings restores the level-1 baseline.
func (s *Settings) InitializeDynamicSettings() {
	s.ShipSpeed = s.baseShipSpeed
	s.BulletSpeed = s.baseBulletSpeed
	s.AlienSpeed = s.baseAlienSpeed
	s.FleetDirection = 1
	s.AlienPoints = s.baseAlienPoints
}

// IncreaseSpeed escalates speeds and alien point values for the next level.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.SpeedupScale)
}

// PauseTicks converts the ship-hit pause into whole ticks, rounding up.
func (s *Settings) PauseTicks() uint64 {
	if s.ShipHitPause <= 0 || s.TickRate <= 0 {
		return 0
	}
	return uint64(math.Ceil(s.ShipHitPause.Seconds() * float64(s.TickRate)))
}
