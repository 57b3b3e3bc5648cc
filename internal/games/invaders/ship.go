package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Ship is the player's ship, anchored to the bottom of the screen.
type Ship struct {
	Center      float64 // Horizontal center in cells
	MovingLeft  bool
	MovingRight bool
	rect        core.Rect
	art         Art
	color       core.Color
	screenW     int
}

// NewShip creates a ship at the bottom center of the screen.
func NewShip(s *Settings) *Ship {
	sh := &Ship{
		art:     s.ShipArt,
		color:   s.ShipColor,
		screenW: s.ScreenWidth,
		rect: core.NewRect(0, s.ScreenHeight-s.ShipArt.Height(),
			s.ShipArt.Width(), s.ShipArt.Height()),
	}
	sh.CenterShip()
	return sh
}

// Bounds returns the ship's bounding box.
func (sh *Ship) Bounds() core.Rect { return sh.rect }

// Update moves the ship according to the movement intent flags, keeping
// it fully on screen.
func (sh *Ship) Update(s *Settings) {
	if sh.MovingRight && sh.rect.Right() < sh.screenW {
		sh.Center += s.ShipSpeed
	}
	if sh.MovingLeft && sh.rect.X > 0 {
		sh.Center -= s.ShipSpeed
	}
	half := float64(sh.rect.W) / 2
	sh.Center = core.ClampF(sh.Center, half, float64(sh.screenW)-half)
	sh.syncRect()
}

// CenterShip puts the ship back in the middle of the bottom row.
func (sh *Ship) CenterShip() {
	sh.Center = float64(sh.screenW) / 2
	sh.syncRect()
}

func (sh *Ship) syncRect() {
	sh.rect.X = core.Floor(sh.Center - float64(sh.rect.W)/2)
}

// Draw paints the ship.
func (sh *Ship) Draw(dst *core.Screen) {
	sh.art.Draw(dst, sh.rect.X, sh.rect.Y, sh.color)
}
