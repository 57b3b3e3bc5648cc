package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func TestScoreboardRows(t *testing.T) {
	store := openStore(t)
	for _, e := range []storage.ScoreEntry{
		{GameID: "invaders", Player: "ann", Score: 1500, Level: 3},
		{GameID: "invaders", Player: "bob", Score: 250, Level: 1},
		{GameID: "other", Player: "eve", Score: 9000, Level: 9},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, "invaders", "Alien Invasion", 80, 24)

	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0][1] != "ann" || rows[0][2] != "1,500" || rows[0][3] != "3" {
		t.Errorf("first row = %v", rows[0])
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Alien Invasion", "2 games", "best 1,500"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardRefresh(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, "invaders", "Alien Invasion", 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("empty history should say so")
	}

	if _, err := store.SaveScore(storage.ScoreEntry{GameID: "invaders", Score: 50}); err != nil {
		t.Fatalf("SaveScore failed: %v", err)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(ScoreboardModel)
	if len(m.table.Rows()) != 1 {
		t.Errorf("got %d rows after refresh, want 1", len(m.table.Rows()))
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "Alien Invasion", 80, 24)

	if !strings.Contains(m.View(), "unavailable") {
		t.Error("missing store should be reported")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("abcdef", 3); got != "abcdef" {
		t.Errorf("centerText = %q", got)
	}
}
