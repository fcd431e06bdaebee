package mirrorb

import (
	"fmt"

	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

// Version is reported on the title line.
const Version = "v0.9.0"

func levelLabel(st *core.State) string {
	if st.Final {
		return "FINAL LEVEL!"
	}
	return fmt.Sprintf("Level: %d", st.Cursor.Displayed)
}

func statusLine(st *core.State, gameOver bool) string {
	switch {
	case gameOver:
		return "Every level solved. Esc to leave."
	case st.Complete:
		return "Solved! Click next or press n."
	case st.Holding >= 0:
		return "Click a floor cell to place the piece."
	case st.BeamHold:
		return "Release to fire."
	default:
		return ""
	}
}
