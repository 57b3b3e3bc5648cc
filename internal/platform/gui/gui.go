// Package gui runs the game in a desktop window with Ebitengine, which
// reports real key releases and mouse clicks.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Cell size in unscaled pixels. The debug font is 6x16.
const (
	cellW = 8
	cellH = 16
)

// EventPlayer reacts to game events with sound.
type EventPlayer interface {
	PlayEvent(e core.Event)
}

// Options configures the window. Zero values disable the optional services.
type Options struct {
	Cols   int     // Grid width in cells
	Rows   int     // Grid height in cells
	Scale  float64 // Window pixels per unscaled pixel
	Store  *storage.Store
	Sound  EventPlayer
	Logger *log.Logger
	Player string
}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:       {0xcc, 0xcc, 0xcc, 0xff},
	core.ColorRed:           {0xcd, 0x00, 0x00, 0xff},
	core.ColorGreen:         {0x00, 0xcd, 0x00, 0xff},
	core.ColorYellow:        {0xcd, 0xcd, 0x00, 0xff},
	core.ColorBlue:          {0x00, 0x00, 0xee, 0xff},
	core.ColorMagenta:       {0xcd, 0x00, 0xcd, 0xff},
	core.ColorCyan:          {0x00, 0xcd, 0xcd, 0xff},
	core.ColorWhite:         {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorBrightRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorBrightGreen:   {0x00, 0xff, 0x00, 0xff},
	core.ColorBrightYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightBlue:    {0x5c, 0x5c, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x00, 0xff, 0xff},
	core.ColorBrightCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x87, 0x00, 0xff},
	core.ColorGray:          {0x8a, 0x8a, 0x8a, 0xff},
}

// Background colors; the default background is black rather than the text gray.
func bgColor(c core.Color) color.RGBA {
	if c == core.ColorDefault {
		return color.RGBA{0x00, 0x00, 0x00, 0xff}
	}
	return palette[c]
}

type window struct {
	game     core.Game
	screen   *core.Screen
	opts     Options
	logger   *log.Logger
	glyphs   map[rune]*ebiten.Image
	state    core.GameState
	cursorOn bool
}

// Run opens a window and plays game until it is closed or q is pressed.
func Run(game core.Game, rt core.RuntimeConfig, opts Options) error {
	if opts.Cols <= 0 {
		opts.Cols = rt.ScreenW
	}
	if opts.Rows <= 0 {
		opts.Rows = rt.ScreenH
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}
	rt.ScreenW, rt.ScreenH = opts.Cols, opts.Rows

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(rt)
	w := &window{
		game:     game,
		screen:   core.NewScreen(opts.Cols, opts.Rows),
		opts:     opts,
		logger:   logger,
		glyphs:   make(map[rune]*ebiten.Image),
		state:    game.State(),
		cursorOn: true,
	}

	ebiten.SetTPS(rt.TickRate)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(
		int(float64(opts.Cols*cellW)*opts.Scale),
		int(float64(opts.Rows*cellH)*opts.Scale),
	)
	w.syncCursor()

	err := ebiten.RunGame(w)
	if w.state.Active {
		w.saveScore(w.state)
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// Update advances the game by one tick.
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	result := w.game.Step(w.readInput())
	w.state = result.State
	w.handleEvents(result.Events)
	w.syncCursor()
	return nil
}

// readInput builds this tick's frame from key edges and mouse presses.
func (w *window) readInput() core.InputFrame {
	frame := core.NewInputFrame()

	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				frame.Set(b.press)
			}
			if b.release != core.ActionNone && inpututil.IsKeyJustReleased(k) {
				frame.Set(b.release)
			}
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		frame.Click(x/cellW, y/cellH)
	}
	return frame
}

var keyBindings = []struct {
	keys    []ebiten.Key
	press   core.Action
	release core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft, core.ActionLeftRelease},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight, core.ActionRightRelease},
	{[]ebiten.Key{ebiten.KeySpace}, core.ActionFire, core.ActionNone},
	{[]ebiten.Key{ebiten.KeyEnter}, core.ActionConfirm, core.ActionNone},
}

func (w *window) syncCursor() {
	if w.state.PointerVisible == w.cursorOn {
		return
	}
	w.cursorOn = w.state.PointerVisible
	if w.cursorOn {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
}

func (w *window) handleEvents(events []core.Event) {
	for _, e := range events {
		if w.opts.Sound != nil {
			w.opts.Sound.PlayEvent(e)
		}

		switch e.Kind {
		case core.EventGameStarted:
			w.logger.Info("game started")
		case core.EventShipHit:
			w.logger.Info("ship hit", "ships_left", e.Value)
		case core.EventLevelCleared:
			w.logger.Info("level cleared", "level", e.Value)
		case core.EventGameOver:
			w.logger.Info("game over", "score", e.Value, "level", w.state.Level)
			w.saveScore(w.state)
		}
	}
}

func (w *window) saveScore(st core.GameState) {
	if w.opts.Store == nil || st.Score <= 0 {
		return
	}
	_, err := w.opts.Store.SaveScore(storage.ScoreEntry{
		GameID: w.game.ID(),
		Player: w.opts.Player,
		Score:  st.Score,
		Level:  st.Level,
	})
	if err != nil {
		w.logger.Warn("could not save score", "error", err)
	}
}

// Draw paints the cell grid. Each glyph is printed once in white and tinted per cell.
func (w *window) Draw(dst *ebiten.Image) {
	w.game.Render(w.screen)
	dst.Fill(bgColor(w.screen.Background()))

	for y := range w.screen.Height() {
		for x := range w.screen.Width() {
			cell := w.screen.GetCell(x, y)
			if cell.Rune == ' ' || cell.Rune == 0 {
				continue
			}

			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(x*cellW), float64(y*cellH))
			op.ColorScale.ScaleWithColor(palette[cell.Color])
			dst.DrawImage(w.glyph(cell.Rune), op)
		}
	}
}

func (w *window) glyph(r rune) *ebiten.Image {
	img, ok := w.glyphs[r]
	if !ok {
		img = ebiten.NewImage(cellW, cellH)
		ebitenutil.DebugPrintAt(img, string(r), 1, 0)
		w.glyphs[r] = img
	}
	return img
}

// Layout keeps the logical screen at the grid size; the window scales it.
func (w *window) Layout(_, _ int) (int, int) {
	return w.opts.Cols * cellW, w.opts.Rows * cellH
}
