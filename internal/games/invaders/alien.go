package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Alien is a single member of the fleet.
type Alien struct {
	X       float64
	rect    core.Rect
	art     Art
	color   core.Color
	screenW int
}

// NewAlien creates an alien with its top-left corner at (x, y).
func NewAlien(s *Settings, x, y int) *Alien {
	return &Alien{
		X:       float64(x),
		rect:    core.NewRect(x, y, s.AlienArt.Width(), s.AlienArt.Height()),
		art:     s.AlienArt,
		color:   s.AlienColor,
		screenW: s.ScreenWidth,
	}
}

// Bounds returns the alien's bounding box.
func (a *Alien) Bounds() core.Rect { return a.rect }

// CheckEdges reports whether the alien touches either side of the screen.
func (a *Alien) CheckEdges() bool {
	return a.rect.Right() >= a.screenW || a.rect.X <= 0
}

// Update moves the alien sideways in the fleet's current direction.
func (a *Alien) Update(s *Settings) {
	a.X += s.AlienSpeed * float64(s.FleetDirection)
	a.rect.X = core.Floor(a.X)
}

// Drop moves the alien down by the given number of rows.
func (a *Alien) Drop(rows int) {
	a.rect.Y += rows
}

// Draw paints the alien.
func (a *Alien) Draw(dst *core.Screen) {
	a.art.Draw(dst, a.rect.X, a.rect.Y, a.color)
}
