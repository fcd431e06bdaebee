package core

// Cursor tracks where the player is in the catalog.
type Cursor struct {
	Level     int // 1-based pool index; 0 before the first level loads
	SubLevel  int // 0 or 1, alternates within pools of more than one option
	Option    int // Index into the current pool
	Displayed int // Label shown to the player
}

// DisplayedLevel returns the label for a level and sub-level.
func DisplayedLevel(level, sub int) int {
	if level <= 1 {
		return 1
	}
	return (level-1)*2 + sub
}

// State owns one player's board, inventory, holding state, beam and history.
type State struct {
	Board   *Board
	History History
	Cursor  Cursor

	Holding   int     // Held slot, or -1
	Emitter   int     // Armed source cell, or -1
	BeamHold  bool    // Pointer is still down on the emitter
	BeamAlpha float64 // Overlay opacity, fades after release

	Complete bool // Current level solved
	Final    bool // Current level is the last one
	Moves    int  // Snapshots pushed by the player since the level loaded

	catalog *Catalog
	rng     Rand
}

// NewState returns a state positioned before the first level. Call
// NextLevel or JumpTo to load a board.
func NewState(catalog *Catalog, rng Rand) *State {
	return &State{
		Holding: -1,
		Emitter: -1,
		catalog: catalog,
		rng:     rng,
	}
}

// Catalog returns the catalog levels are drawn from.
func (s *State) Catalog() *Catalog {
	return s.catalog
}

// SetCatalog swaps the catalog. The current board stays in play; the cursor
// is clamped so the next transition lands inside the new catalog.
func (s *State) SetCatalog(c *Catalog) {
	s.catalog = c
	if s.Cursor.Level > c.Len() {
		s.Cursor.Level = c.Len()
		s.Cursor.SubLevel = 0
	}
	if pool := c.Pool(s.Cursor.Level); pool != nil {
		s.Cursor.Option = min(s.Cursor.Option, len(pool)-1)
		s.Final = s.isFinal()
	}
}

// Loaded reports whether a board is in play.
func (s *State) Loaded() bool {
	return s.Board != nil
}

// NextLevel advances the cursor and loads a fresh, randomly oriented board.
func (s *State) NextLevel() {
	c := &s.Cursor
	if c.Level == 0 {
		c.Level, c.SubLevel, c.Option = 1, 0, 0
	} else {
		if c.Level > 1 {
			c.SubLevel ^= 1
		}
		if c.SubLevel == 0 {
			c.Level = min(c.Level+1, s.catalog.Len())
			c.Option = s.rng.Intn(len(s.catalog.Pool(c.Level)))
		} else {
			c.Option = (c.Option + 1) % len(s.catalog.Pool(c.Level))
		}
	}
	s.load(true)
}

// LevelFor maps a displayed label back to its level and sub-level.
func LevelFor(displayed int) (level, sub int) {
	if displayed <= 1 {
		return 1, 0
	}
	return displayed/2 + 1, displayed % 2
}

// JumpTo loads the level carrying the given displayed label, clamped to the
// catalog.
func (s *State) JumpTo(displayed int) {
	level, sub := LevelFor(displayed)
	if level > s.catalog.Len() {
		level, sub = s.catalog.Len(), 0
	}
	if level <= 1 {
		sub = 0
	}
	s.Cursor = Cursor{
		Level:    level,
		SubLevel: sub,
		Option:   s.rng.Intn(len(s.catalog.Pool(level))),
	}
	s.load(true)
}

// TrashLevel rebuilds the current level from a random option of its pool.
func (s *State) TrashLevel() bool {
	if !s.idle() {
		return false
	}
	s.Cursor.Option = s.rng.Intn(len(s.catalog.Pool(s.Cursor.Level)))
	s.load(false)
	return true
}

// ResetLevel returns every piece to the inventory.
func (s *State) ResetLevel() bool {
	if !s.idle() || !s.Board.Pieces.AnyPlaced() {
		return false
	}
	s.Board.Pieces.Reset()
	s.Board.UpdateClipping()
	s.commit()
	return true
}

// Undo restores the previous snapshot.
func (s *State) Undo() bool {
	if !s.idle() || !s.History.Undo(s.Board) {
		return false
	}
	s.disarm()
	return true
}

// Redo restores the next snapshot.
func (s *State) Redo() bool {
	if !s.idle() || !s.History.Redo(s.Board) {
		return false
	}
	s.disarm()
	return true
}

// Transform applies a board motion and records it.
func (s *State) Transform(t Transform) bool {
	if !s.idle() {
		return false
	}
	s.Board.Apply(t)
	s.commit()
	return true
}

// SelectSlot picks up an inventory piece into the hand.
func (s *State) SelectSlot(slot int) bool {
	if s.Complete || !s.Board.InInventory(slot) {
		return false
	}
	s.Holding = slot
	return true
}

// ClickCell runs the holding state machine for a click on a floor cell.
func (s *State) ClickCell(cell int) bool {
	b := s.Board
	if s.Complete || !b.CanHold(cell) {
		return false
	}
	occupant := b.Pieces.At(cell)
	switch {
	case s.Holding >= 0 && occupant < 0:
		must(b.Place(s.Holding, cell))
		s.Holding = -1
	case s.Holding >= 0:
		q, err := b.Swap(s.Holding, cell)
		must(err)
		s.Holding = q
	case occupant >= 0:
		q, err := b.Pickup(cell)
		must(err)
		s.Holding = q
	default:
		return false
	}
	b.UpdateClipping()
	s.commit()
	return true
}

// Drop empties the hand without touching the board.
func (s *State) Drop() bool {
	if s.Holding < 0 {
		return false
	}
	s.Holding = -1
	return true
}

// Arm starts a beam from a source cell. The pointer is considered held
// until Release.
func (s *State) Arm(cell int) bool {
	sc := s.Board.Scene
	if s.Complete || s.Holding >= 0 || !sc.InBounds(cell) || !IsSource(sc.Tilemap[cell]) {
		return false
	}
	s.Emitter = cell
	s.BeamHold = true
	s.BeamAlpha = 1
	sc.Arm(cell)
	return true
}

// Advance runs up to steps propagation changes for the armed beam; steps
// <= 0 runs to the fixed point. It reports whether the overlay changed.
func (s *State) Advance(steps int) bool {
	if s.Emitter < 0 {
		return false
	}
	sc := s.Board.Scene
	if steps <= 0 {
		return sc.Propagate(s.Emitter) > 0
	}
	changed := false
	for range steps {
		if !sc.StepBeam(s.Emitter) {
			break
		}
		changed = true
	}
	return changed
}

// Release ends a pointer press. A held beam settles and is checked for a
// win; it reports whether the level was solved.
func (s *State) Release() bool {
	solved := false
	if s.BeamHold {
		s.Board.Scene.Propagate(s.Emitter)
		solved = s.CheckWin()
	}
	if !s.Complete {
		s.BeamHold = false
	}
	s.Board.UpdateClipping()
	return solved
}

// CheckWin marks the level complete when every orb is lit.
func (s *State) CheckWin() bool {
	sc := s.Board.Scene
	if s.Complete || sc.NumGoals == 0 || sc.ActiveOrbs() != sc.NumGoals {
		return false
	}
	s.Board.Pieces.Reset()
	s.Board.UpdateClipping()
	sc.ClearBeams()
	s.Holding = -1
	s.Complete = true
	s.BeamHold = false
	s.Emitter = -1
	s.BeamAlpha = 0
	return true
}

// Fade lowers the released beam's opacity and clears it once invisible.
func (s *State) Fade(step float64) bool {
	if s.Emitter < 0 || s.BeamHold {
		return false
	}
	s.BeamAlpha -= step
	if s.BeamAlpha < 0 {
		s.BeamAlpha = 0
		s.Emitter = -1
		s.Board.Scene.ClearBeams()
	}
	return true
}

// Validate checks the board together with the history cursor.
func (s *State) Validate() error {
	if s.Board == nil {
		return nil
	}
	if err := s.Board.Validate(); err != nil {
		return err
	}
	if n := s.History.Len(); n == 0 || s.History.Index() >= n {
		return violation("validate", "history cursor %d outside ledger of %d", s.History.Index(), n)
	}
	if s.Holding >= 0 && !s.Board.InInventory(s.Holding) {
		return violation("validate", "held piece %d is not in the inventory", s.Holding)
	}
	return nil
}

func (s *State) idle() bool {
	return s.Board != nil && !s.Complete && s.Holding < 0
}

func (s *State) commit() {
	s.History.Push(s.Board)
	s.Moves++
	s.disarm()
}

// disarm drops the beam. An overlay is only valid for the board it was
// traced on, so every board change clears it.
func (s *State) disarm() {
	s.Emitter = -1
	s.BeamHold = false
	s.BeamAlpha = 0
	s.Board.Scene.ClearBeams()
}

func (s *State) isFinal() bool {
	pool := s.catalog.Pool(s.Cursor.Level)
	return s.Cursor.Level == s.catalog.Len() && s.Cursor.SubLevel == (len(pool)-1)%2
}

// load builds the board for the cursor. shuffle applies the random
// orientation: each flip with probability one half, then up to three
// quarter turns each taken with probability one half.
func (s *State) load(shuffle bool) {
	block := s.catalog.Pool(s.Cursor.Level)[s.Cursor.Option]
	s.Board = NewBoard(BuildScene(block, s.rng))
	if shuffle {
		if s.rng.Float32() < 0.5 {
			s.Board.Apply(FlipH)
		}
		if s.rng.Float32() < 0.5 {
			s.Board.Apply(FlipV)
		}
		for range 3 {
			if s.rng.Float32() < 0.5 {
				s.Board.Apply(Rotate)
			}
		}
	}
	s.Final = s.isFinal()
	s.Cursor.Displayed = DisplayedLevel(s.Cursor.Level, s.Cursor.SubLevel)
	s.Holding = -1
	s.disarm()
	s.Complete = false
	s.Moves = 0
	s.History.Clear()
	s.History.Push(s.Board)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
