// Package registry holds the game factories the front ends start games
// from. A game registers itself in init(), so the terminal and SSH front
// ends can create it by ID without importing it.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/mirrorb/internal/core"
	mcore "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// Game is the interface the platform drives.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "mirrorb").
	// Used for CLI commands and solve storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "mirr/orb").
	Title() string

	// Reset starts a new run sized to cfg and seeded with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Press, Undo, etc.) plus the pointer.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (solved count, level, quit request).
	State() core.GameState
}

// Optional capabilities. The front ends check for them with a type
// assertion and fall back when a game lacks one.
type (
	// Resizer adapts to a new screen size without restarting.
	Resizer interface {
		Resize(w, h int)
	}

	// CatalogReloader swaps its level catalog while running.
	CatalogReloader interface {
		ReloadCatalog(c *mcore.Catalog)
	}

	// LevelPicker starts its next run at a chosen level of a given catalog.
	LevelPicker interface {
		StartAt(level int)
		UseCatalog(c *mcore.Catalog)
	}
)

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
