package invaders

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

const (
	buttonWidth  = 12
	buttonHeight = 3
)

// Button is a fixed-size labelled box centered on the screen.
type Button struct {
	Rect  core.Rect
	Label string
	Color core.Color
}

// NewButton creates a button centered on the screen.
func NewButton(s *Settings, label string) *Button {
	return &Button{
		Rect: core.NewRect((s.ScreenWidth-buttonWidth)/2, (s.ScreenHeight-buttonHeight)/2,
			buttonWidth, buttonHeight),
		Label: label,
		Color: core.ColorBrightGreen,
	}
}

// Contains reports whether the cell (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return b.Rect.Contains(x, y)
}

// Draw paints the box and its label.
func (b *Button) Draw(dst *core.Screen) {
	dst.DrawRect(b.Rect, ' ', core.ColorDefault)
	dst.DrawBox(b.Rect, b.Color)
	x := b.Rect.X + (b.Rect.W-utf8.RuneCountInString(b.Label))/2
	dst.DrawTextColored(x, b.Rect.Y+b.Rect.H/2, b.Label, core.ColorBrightWhite)
}
