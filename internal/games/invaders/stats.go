package invaders

// GameStats tracks the statistics of the current session.
type GameStats struct {
	Score     int
	HighScore int // Never reset; survives new games and screen resizes
	Level     int
	ShipsLeft int
	Active    bool // False at startup; the Play button flips it
	settings  *Settings
}

// NewGameStats creates stats in the inactive state.
func NewGameStats(s *Settings) *GameStats {
	st := &GameStats{settings: s}
	st.ResetStats()
	return st
}

// ResetStats restores per-game counters. High score and Active are left alone.
func (st *GameStats) ResetStats() {
	st.ShipsLeft = st.settings.ShipLimit
	st.Score = 0
	st.Level = 1
}
