package invaders

import (
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Scoreboard renders the session counters. The display strings only change
// when one of the Prep methods is called.
type Scoreboard struct {
	settings *Settings
	stats    *GameStats

	score     string
	highScore string
	level     string
	ships     int
}

// NewScoreboard creates a scoreboard with all displays prepared.
func NewScoreboard(s *Settings, st *GameStats) *Scoreboard {
	sb := &Scoreboard{settings: s, stats: st}
	sb.PrepAll()
	return sb
}

// PrepAll refreshes every display.
func (sb *Scoreboard) PrepAll() {
	sb.PrepScore()
	sb.PrepHighScore()
	sb.PrepLevel()
	sb.PrepShips()
}

// PrepScore refreshes the score display.
func (sb *Scoreboard) PrepScore() {
	sb.score = humanize.Comma(int64(sb.stats.Score))
}

// PrepHighScore refreshes the high score display.
func (sb *Scoreboard) PrepHighScore() {
	sb.highScore = "HI " + humanize.Comma(int64(sb.stats.HighScore))
}

// PrepLevel refreshes the level display.
func (sb *Scoreboard) PrepLevel() {
	sb.level = fmt.Sprintf("L%d", sb.stats.Level)
}

// PrepShips refreshes the remaining ships display.
func (sb *Scoreboard) PrepShips() {
	sb.ships = sb.stats.ShipsLeft
}

// Texts returns the prepared score, high score and level strings.
func (sb *Scoreboard) Texts() (score, highScore, level string) {
	return sb.score, sb.highScore, sb.level
}

// Show draws remaining ships top-left, high score top-center, score
// top-right and the level under the score.
func (sb *Scoreboard) Show(dst *core.Screen) {
	art := sb.settings.ShipArt
	for i := range sb.ships {
		art.Draw(dst, i*(art.Width()+1), 0, sb.settings.ShipColor)
	}

	w := sb.settings.ScreenWidth
	dst.DrawTextColored((w-utf8.RuneCountInString(sb.highScore))/2, 0, sb.highScore, core.ColorBrightWhite)
	dst.DrawTextColored(w-utf8.RuneCountInString(sb.score)-1, 0, sb.score, core.ColorBrightWhite)
	dst.DrawTextColored(w-utf8.RuneCountInString(sb.level)-1, 1, sb.level, core.ColorGray)
}
