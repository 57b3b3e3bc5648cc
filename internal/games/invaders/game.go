// Package invaders implements Alien Invasion: a ship at the bottom of the
// screen shoots down a fleet that sweeps side to side and creeps downward.
package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

var instructions = []string{
	"Instructions:",
	"- Use <- or -> to move the ship",
	"- Use SPACE to fire bullets",
	"- Use Q to quit the game",
	"Click Play or press Enter",
}

// Game owns the settings, stats and entities and advances them one tick
// per Step.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	settings *Settings
	stats    *GameStats
	sb       *Scoreboard
	ship     *Ship
	bullets  *Group[*Bullet]
	aliens   *Group[*Alien]
	play     *Button

	tick       uint64
	pauseUntil uint64 // Last tick of the hold after a lost ship
	tooSmall   bool
	events     []core.Event
}

// New creates a game for the default 80x24 screen. Frontends call Reset
// with the real screen size before the first Step.
func New(cfg config.InvadersConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string { return "invaders" }

// Title returns the display name.
func (g *Game) Title() string { return "Alien Invasion" }

// Reset rebuilds the game for a new screen. Any game in progress is
// abandoned and the menu is shown; the high score is kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = rt
	g.settings = NewSettings(g.cfg, rt)

	highScore := 0
	if g.stats != nil {
		highScore = g.stats.HighScore
	}
	g.stats = NewGameStats(g.settings)
	g.stats.HighScore = highScore
	g.sb = NewScoreboard(g.settings, g.stats)

	g.ship = NewShip(g.settings)
	g.bullets = NewGroup[*Bullet]()
	g.aliens = NewGroup[*Alien]()
	g.play = NewButton(g.settings, "Play")

	g.tick = 0
	g.pauseUntil = 0
	g.events = nil

	art := g.settings.AlienArt
	g.tooSmall = rt.ScreenW < g.cfg.Screen.MinWidth || rt.ScreenH < g.cfg.Screen.MinHeight ||
		NumberAliensX(rt.ScreenW, art.Width()) == 0 ||
		NumberRows(rt.ScreenH, g.settings.ShipArt.Height(), art.Height()) == 0
	g.createFleet()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	g.tick++

	if g.tooSmall {
		return g.result()
	}

	g.checkEvents(in)

	if g.stats.Active && !g.paused() {
		g.ship.Update(g.settings)
		g.updateBullets()
		g.updateAliens()
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

func (g *Game) paused() bool {
	return g.tick <= g.pauseUntil
}

// checkEvents applies one frame of input. While paused after a lost ship
// only releases are honored.
func (g *Game) checkEvents(in core.InputFrame) {
	if !g.paused() {
		if in.Has(core.ActionRight) {
			g.ship.MovingRight = true
		}
		if in.Has(core.ActionLeft) {
			g.ship.MovingLeft = true
		}
		if in.Has(core.ActionFire) {
			g.fireBullet()
		}
		for _, c := range in.Clicks {
			g.checkPlayButton(c.X, c.Y)
		}
		if in.Has(core.ActionConfirm) {
			c := g.play.Rect.Center()
			g.checkPlayButton(c.X, c.Y)
		}
	}

	if in.Has(core.ActionRightRelease) {
		g.ship.MovingRight = false
	}
	if in.Has(core.ActionLeftRelease) {
		g.ship.MovingLeft = false
	}
}

// checkPlayButton starts a new game when Play is clicked from the menu.
func (g *Game) checkPlayButton(x, y int) {
	if !g.play.Contains(x, y) || g.stats.Active {
		return
	}

	g.settings.InitializeDynamicSettings()

	g.stats.ResetStats()
	g.stats.Active = true
	g.sb.PrepAll()

	g.aliens.Empty()
	g.bullets.Empty()

	g.createFleet()
	g.ship.CenterShip()
	g.pauseUntil = 0

	g.emit(core.EventGameStarted, 0)
}

// fireBullet adds a bullet unless the limit is already in flight.
func (g *Game) fireBullet() {
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return
	}
	g.bullets.Add(NewBullet(g.settings, g.ship))
	g.emit(core.EventBulletFired, g.bullets.Len())
}

func (g *Game) updateBullets() {
	g.bullets.Update(g.settings)
	g.bullets.RemoveFunc(func(b *Bullet) bool {
		return b.Bounds().Bottom() <= 0
	})

	g.checkBulletAlienCollisions()
}

func (g *Game) checkBulletAlienCollisions() {
	collisions := GroupCollide(g.bullets, g.aliens)
	if len(collisions) > 0 {
		destroyed := 0
		for _, c := range collisions {
			g.stats.Score += g.settings.AlienPoints * len(c.Hits)
			destroyed += len(c.Hits)
		}
		g.sb.PrepScore()
		g.emit(core.EventAliensDestroyed, destroyed)
		g.checkHighScore()
	}

	if g.aliens.Len() == 0 {
		// Fleet destroyed: next level
		g.bullets.Empty()
		g.settings.IncreaseSpeed()

		g.stats.Level++
		g.sb.PrepLevel()

		g.createFleet()
		g.emit(core.EventLevelCleared, g.stats.Level)
	}
}

func (g *Game) checkHighScore() {
	if g.stats.Score > g.stats.HighScore {
		g.stats.HighScore = g.stats.Score
		g.sb.PrepHighScore()
		g.emit(core.EventHighScore, g.stats.HighScore)
	}
}

func (g *Game) updateAliens() {
	g.checkFleetEdges()
	g.aliens.Update(g.settings)

	if _, hit := CollideAny(g.ship.Bounds(), g.aliens); hit {
		g.shipHit()
	}

	g.checkAliensBottom()
}

func (g *Game) checkAliensBottom() {
	for _, a := range g.aliens.sprites {
		if a.Bounds().Bottom() >= g.settings.ScreenHeight {
			g.shipHit()
			break
		}
	}
}

// shipHit spends a reserve ship or ends the game when none are left.
func (g *Game) shipHit() {
	if !g.stats.Active {
		return
	}

	if g.stats.ShipsLeft > 0 {
		g.stats.ShipsLeft--
		g.sb.PrepShips()

		g.aliens.Empty()
		g.bullets.Empty()

		g.createFleet()
		g.ship.CenterShip()

		g.pauseUntil = g.tick + g.settings.PauseTicks()
		g.emit(core.EventShipHit, g.stats.ShipsLeft)
		return
	}

	// Game over: the fleet and bullets stay where they are until the next Play
	g.stats.Active = false
	g.emit(core.EventGameOver, g.stats.Score)
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Fill(g.settings.BgColor)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, "Please resize")
		return
	}

	g.bullets.Draw(dst)
	g.ship.Draw(dst)
	g.aliens.Draw(dst)
	g.sb.Show(dst)

	if !g.stats.Active {
		g.play.Draw(dst)
		g.showInstructions(dst)
	}
}

func (g *Game) showInstructions(dst *core.Screen) {
	top := g.play.Rect.Bottom()
	for i, line := range instructions {
		dst.DrawTextCentered(top+i, line)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:          g.stats.Score,
		HighScore:      g.stats.HighScore,
		Level:          g.stats.Level,
		Lives:          g.stats.ShipsLeft,
		Active:         g.stats.Active,
		Paused:         g.stats.Active && g.paused(),
		PointerVisible: !g.stats.Active,
	}
}

// PointerVisible reports whether the frontend should show the pointer.
func (g *Game) PointerVisible() bool {
	return !g.stats.Active
}

// Settings exposes the live settings, mainly for frontends and tests.
func (g *Game) Settings() *Settings { return g.settings }

// Scoreboard exposes the scoreboard.
func (g *Game) Scoreboard() *Scoreboard { return g.sb }

// PlayButton exposes the Play button geometry.
func (g *Game) PlayButton() *Button { return g.play }

var _ core.Game = (*Game)(nil)
