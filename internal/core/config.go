package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int  // Levels solved during this run
	Level         int  // Displayed level in play, 0 before one is loaded
	GameOver      bool // The run has ended (last level solved)
	QuitRequested bool // The player asked to leave the game
}

// EventKind identifies a notable occurrence during a tick.
type EventKind int

const (
	EventNone EventKind = iota
	EventLevelStarted
	EventLevelSolved
	EventCatalogReloaded
)

// Event reports something the platform may want to record or log.
type Event struct {
	Kind  EventKind
	Level int // Displayed level number
	Moves int // History snapshots pushed while solving
	Ticks int // Ticks spent on the level
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
