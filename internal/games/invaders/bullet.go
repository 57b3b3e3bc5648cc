package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Bullet is a projectile fired straight up from the ship.
type Bullet struct {
	Y     float64
	rect  core.Rect
	glyph rune
	color core.Color
}

// NewBullet spawns a bullet at the top center of the ship.
func NewBullet(s *Settings, ship *Ship) *Bullet {
	top := ship.Bounds()
	b := &Bullet{
		Y:     float64(top.Y),
		glyph: s.BulletGlyph,
		color: s.BulletColor,
		rect:  core.NewRect(top.CenterX()-s.BulletWidth/2, top.Y, s.BulletWidth, s.BulletHeight),
	}
	return b
}

// Bounds returns the bullet's bounding box.
func (b *Bullet) Bounds() core.Rect { return b.rect }

// Update moves the bullet up.
func (b *Bullet) Update(s *Settings) {
	b.Y -= s.BulletSpeed
	b.rect.Y = core.Floor(b.Y)
}

// Draw paints the bullet.
func (b *Bullet) Draw(dst *core.Screen) {
	dst.DrawRect(b.rect, b.glyph, b.color)
}
