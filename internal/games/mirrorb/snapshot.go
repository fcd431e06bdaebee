package mirrorb

import "github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"

// Phase summarises what the player is doing.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhaseHolding     Phase = "holding"
	PhaseBeam        Phase = "beam"
	PhaseSolved      Phase = "solved"
	PhaseFinished    Phase = "finished"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Level     int // Displayed level
	Option    int
	Size      int
	Score     int
	Moves     int
	Holding   int
	Emitter   int
	Tilemap   []core.Tile
	Positions [core.MaxPieces]int
	History   int
	Phase     Phase
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	st := g.state
	switch {
	case st == nil:
		return Snapshot{Tick: g.tick, Phase: phase}
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseFinished
	case st.Complete:
		phase = PhaseSolved
	case st.Holding >= 0:
		phase = PhaseHolding
	case st.Emitter >= 0:
		phase = PhaseBeam
	}

	return Snapshot{
		Tick:      g.tick,
		Level:     st.Cursor.Displayed,
		Option:    st.Cursor.Option,
		Size:      st.Board.Scene.Size,
		Score:     g.solved,
		Moves:     st.Moves,
		Holding:   st.Holding,
		Emitter:   st.Emitter,
		Tilemap:   append([]core.Tile(nil), st.Board.Scene.Tilemap...),
		Positions: st.Board.Pieces.Positions(),
		History:   st.History.Len(),
		Phase:     phase,
	}
}
