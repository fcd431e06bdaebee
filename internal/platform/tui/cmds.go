// Package tui provides the Bubble Tea integration for mirr/orb.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/levels"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// CatalogMsg carries a freshly reloaded level catalog.
type CatalogMsg struct {
	Catalog *mcore.Catalog
}

// WatchErrMsg reports a level file that failed to reload.
type WatchErrMsg struct {
	Err error
}

// tickCmd schedules the next simulation tick. A non-positive rate runs at
// 60 ticks per second.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// watchCmd waits for the next result from w. The receiver must issue it
// again after each message to keep listening.
func watchCmd(w *levels.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case c := <-w.Catalog:
			return CatalogMsg{Catalog: c}
		case err := <-w.Errors:
			return WatchErrMsg{Err: err}
		case <-w.Done():
			return nil
		}
	}
}
