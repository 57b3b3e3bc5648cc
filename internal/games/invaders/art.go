package invaders

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Art is a small block of text used as an entity image.
// Spaces are transparent when drawn.
type Art struct {
	lines []string
	w, h  int
}

// ParseArt splits a sprite string into rows. Rows are separated by newlines.
func ParseArt(s string) Art {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	a := Art{lines: lines, h: len(lines)}
	for _, line := range lines {
		a.w = max(a.w, utf8.RuneCountInString(line))
	}
	return a
}

// Width returns the widest row in cells.
func (a Art) Width() int { return a.w }

// Height returns the number of rows.
func (a Art) Height() int { return a.h }

// Draw paints the art with its top-left corner at (x, y).
func (a Art) Draw(dst *core.Screen, x, y int, c core.Color) {
	for row, line := range a.lines {
		col := 0
		for _, r := range line {
			if r != ' ' {
				dst.SetColored(x+col, y+row, r, c)
			}
			col++
		}
	}
}
