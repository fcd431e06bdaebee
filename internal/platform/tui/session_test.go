package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/mirrorb/internal/games/mirrorb"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return s
}

func tick(t *testing.T, m SessionModel) SessionModel {
	t.Helper()
	return send(t, m, TickMsg(time.Time{}))
}

func TestSessionGameRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), testCatalog(), "v-test").WithPlayer("alice")
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Screen() != "game" {
		t.Fatalf("screen = %s after Enter, want game", m.Screen())
	}

	m = tick(t, m)
	if got := m.game.GameState().Level; got != 2 {
		t.Errorf("game started at level %d, want 2", got)
	}
	if !strings.Contains(m.View(), "Level: 2") {
		t.Error("game view does not show the chosen level")
	}

	// Esc leaves the board on the next tick
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)
	if m.Screen() != "menu" {
		t.Fatalf("screen = %s after Esc, want menu", m.Screen())
	}
	if m.quitting {
		t.Error("Esc in game quit the session")
	}
	if m.menu.Selected() != nil {
		t.Error("menu kept the previous selection")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), testCatalog(), "v-test")

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Screen() != "scores" {
		t.Fatalf("screen = %s after Tab, want scores", m.Screen())
	}
	if !strings.Contains(m.View(), "No solves recorded yet") {
		t.Error("empty scoreboard message missing")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Screen() != "menu" {
		t.Errorf("screen = %s after Esc, want menu", m.Screen())
	}
}

func TestSessionCatalogReload(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), testCatalog(), "v-test")
	bigger := mcore.NewCatalog([]mcore.Block{openBlock(5), openBlock(6), openBlock(7), openBlock(8)})

	m = send(t, m, CatalogMsg{Catalog: bigger})
	if m.catalog != bigger {
		t.Fatal("session kept the old catalog")
	}
	if !strings.Contains(m.View(), "4 levels, 4 maps") {
		t.Error("menu does not list the reloaded catalog")
	}

	// A game started afterwards draws from the new catalog
	for range bigger.FinalLevel() {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	if got := m.game.GameState().Level; got != bigger.FinalLevel() {
		t.Errorf("game level = %d, want %d", got, bigger.FinalLevel())
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), testCatalog(), "v-test")
	m = send(t, m, runeKey('q'))
	if !m.quitting || m.View() != "" {
		t.Error("q in the menu did not end the session")
	}
}
