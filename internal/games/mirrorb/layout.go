package mirrorb

import (
	platformcore "github.com/vovakirdan/mirrorb/internal/core"
	"github.com/vovakirdan/mirrorb/internal/games/mirrorb/core"
)

const (
	cellW     = 2 // Terminal columns per board cell
	slotW     = 3 // Terminal columns per inventory slot
	invCols   = 4
	menuW     = 10
	gap       = 4
	hudHeight = 2
)

// MenuItem is one entry of the side menu.
type MenuItem int

const (
	MenuUndo MenuItem = iota
	MenuRedo
	MenuRotate
	MenuFlipH
	MenuFlipV
	MenuReset
	MenuTrash
	MenuNext
	menuCount
)

var menuLabels = [menuCount]string{"undo", "redo", "rotate", "flip h", "flip v", "reset", "trash", "next"}

var menuActions = [menuCount]platformcore.Action{
	platformcore.ActionUndo,
	platformcore.ActionRedo,
	platformcore.ActionRotate,
	platformcore.ActionFlipH,
	platformcore.ActionFlipV,
	platformcore.ActionReset,
	platformcore.ActionTrash,
	platformcore.ActionNext,
}

func (m MenuItem) String() string {
	if m < 0 || m >= menuCount {
		return ""
	}
	return menuLabels[m]
}

// Action returns the platform action the item triggers.
func (m MenuItem) Action() platformcore.Action {
	return menuActions[m]
}

// TargetKind says what part of the screen the pointer is over.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetCell
	TargetSlot
	TargetMenu
)

// Target is the result of a hit test.
type Target struct {
	Kind  TargetKind
	Index int // Cell index, slot or MenuItem
}

// Layout places the board, inventory and menu on the screen.
type Layout struct {
	Board     platformcore.Rect
	Inventory platformcore.Rect
	Menu      platformcore.Rect
	Size      int
	Slots     int
	W, H      int
}

// NewLayout centres a board of side n and an inventory of slots pieces on a
// screen of w by h.
func NewLayout(w, h, n, slots int) Layout {
	rows := (slots + invCols - 1) / invCols
	sideW := max(invCols*slotW, menuW)
	totalW := n*cellW + gap + sideW
	sideH := rows + 1 + int(menuCount)
	totalH := max(n, sideH)

	x := max((w-totalW)/2, 0)
	y := hudHeight + max((h-hudHeight-totalH)/2, 0)

	board := platformcore.NewRect(x, y, n*cellW, n)
	inv := platformcore.NewRect(board.Right()+gap, y, invCols*slotW, rows)
	menu := platformcore.NewRect(inv.X, inv.Bottom()+1, menuW, int(menuCount))
	return Layout{
		Board:     board,
		Inventory: inv,
		Menu:      menu,
		Size:      n,
		Slots:     slots,
		W:         totalW,
		H:         totalH + hudHeight,
	}
}

// Fits reports whether the layout fits a screen of w by h.
func (l Layout) Fits(w, h int) bool {
	return l.W <= w && l.H+1 <= h
}

// Hit returns what lies under the screen point (x, y).
func (l Layout) Hit(x, y int) Target {
	if col, row, ok := l.Board.GridCell(x, y, cellW, 1); ok {
		return Target{Kind: TargetCell, Index: row*l.Size + col}
	}
	if col, row, ok := l.Inventory.GridCell(x, y, slotW, 1); ok {
		if slot := row*invCols + col; slot < l.Slots {
			return Target{Kind: TargetSlot, Index: slot}
		}
	}
	if _, row, ok := l.Menu.GridCell(x, y, menuW, 1); ok {
		return Target{Kind: TargetMenu, Index: row}
	}
	return Target{}
}

// CellOrigin returns the screen position of a board cell.
func (l Layout) CellOrigin(cell int) (int, int) {
	return l.Board.X + (cell%l.Size)*cellW, l.Board.Y + cell/l.Size
}

// SlotOrigin returns the screen position of an inventory slot.
func (l Layout) SlotOrigin(slot int) (int, int) {
	return l.Inventory.X + (slot%invCols)*slotW, l.Inventory.Y + slot/invCols
}

// MenuOrigin returns the screen position of a menu item.
func (l Layout) MenuOrigin(m MenuItem) (int, int) {
	return l.Menu.X, l.Menu.Y + int(m)
}

// inventoryTiles lays out the pieces still in the inventory.
func inventoryTiles(b *core.Board) []core.Tile {
	tiles := make([]core.Tile, b.Slots())
	for k := range tiles {
		if !b.Pieces[k].Placed() {
			tiles[k] = b.Pieces[k].Tile
		}
	}
	return tiles
}
