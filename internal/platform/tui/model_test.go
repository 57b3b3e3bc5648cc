package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// fakeGame replays a fixed state and hands out queued events once.
type fakeGame struct {
	state  core.GameState
	events []core.Event
	resets int
	steps  int
}

func (f *fakeGame) ID() string { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.resets++ }
func (f *fakeGame) State() core.GameState { return f.state }
func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (f *fakeGame) Step(core.InputFrame) core.StepResult {
	f.steps++
	ev := f.events
	f.events = nil
	return core.StepResult{State: f.state, Events: ev}
}

type soundRecorder struct {
	kinds []core.EventKind
}

func (r *soundRecorder) PlayEvent(e core.Event) {
	r.kinds = append(r.kinds, e.Kind)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func TestModelConfirmStartsGame(t *testing.T) {
	m := NewModel(invaders.New(config.DefaultInvadersConfig()), testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if !m.mouseOn {
		t.Fatal("mouse reporting should stay on at the menu")
	}

	m, _ = update(t, m, keyMsg("enter"))
	m, cmd := update(t, m, TickMsg(time.Now()))

	if !m.State().Active {
		t.Fatal("Enter should start a game")
	}
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.mouseOn {
		t.Error("mouse reporting should be off during play")
	}
}

func TestModelClickStartsGame(t *testing.T) {
	g := invaders.New(config.DefaultInvadersConfig())
	m := NewModel(g, testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	c := g.PlayButton().Rect.Center()
	m, _ = update(t, m, tea.MouseMsg{
		X:      c.X,
		Y:      c.Y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m, _ = update(t, m, TickMsg(time.Now()))

	if !m.State().Active {
		t.Fatal("clicking Play should start a game")
	}
}

func TestModelIgnoresMouseRelease(t *testing.T) {
	g := invaders.New(config.DefaultInvadersConfig())
	m := NewModel(g, testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	c := g.PlayButton().Rect.Center()
	m, _ = update(t, m, tea.MouseMsg{
		X:      c.X,
		Y:      c.Y,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	m, _ = update(t, m, TickMsg(time.Now()))

	if m.State().Active {
		t.Fatal("a release alone should not start a game")
	}
}

func TestModelGameOverSavesScore(t *testing.T) {
	store := openStore(t)
	sound := &soundRecorder{}
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{Store: store, Sound: sound, Player: "ann"})

	game.state = core.GameState{Score: 1200, Level: 3, PointerVisible: true}
	game.events = []core.Event{
		{Kind: core.EventShipHit, Value: 0},
		{Kind: core.EventGameOver, Value: 1200},
	}
	m, _ = update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].Score != 1200 || scores[0].Level != 3 || scores[0].Player != "ann" {
		t.Errorf("saved %+v", scores[0])
	}

	if len(sound.kinds) != 2 || sound.kinds[1] != core.EventGameOver {
		t.Errorf("sound got %v", sound.kinds)
	}
}

func TestModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, testRuntime(), Options{Store: store})

	game.events = []core.Event{{Kind: core.EventGameOver, Value: 0}}
	update(t, m, TickMsg(time.Now()))

	high, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore = %d, want nothing saved", high)
	}
}

func TestModelQuitSavesActiveGame(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{state: core.GameState{Score: 300, Level: 1, Active: true}}
	m := NewModel(game, testRuntime(), Options{Store: store})

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}

	high, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if high != 300 {
		t.Errorf("HighScore = %d, want 300", high)
	}
}

func TestModelResizeResetsGame(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{state: core.GameState{Score: 150, Level: 2, Active: true}}
	m := NewModel(game, testRuntime(), Options{Store: store})

	m, _ = update(t, m, keyMsg("left"))
	game.state = core.GameState{PointerVisible: true}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if game.resets != 1 {
		t.Errorf("resets = %d, want 1", game.resets)
	}
	if m.config.ScreenW != 100 || m.config.ScreenH != 30 {
		t.Errorf("config = %+v", m.config)
	}
	if len(m.keys.held) != 0 {
		t.Error("held keys should be released on resize")
	}

	high, _ := store.HighScore("fake")
	if high != 150 {
		t.Errorf("abandoned game score = %d, want 150", high)
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(invaders.New(config.DefaultInvadersConfig()), testRuntime(), Options{})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	view := m.View()
	if !strings.Contains(view, "Play") {
		t.Error("menu view should show the Play button")
	}
	if lines := strings.Count(view, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(&fakeGame{}, testRuntime(), Options{ScreenshotDir: dir})

	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "fake") {
		t.Errorf("screenshot starts with %q", string(data)[:10])
	}
}
