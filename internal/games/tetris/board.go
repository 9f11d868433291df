package tetris

// Board is a fixed grid of locked cells, row 0 at the top. Every cell is
// either empty or holds exactly one piece-kind tag. The falling piece is never
// written here; it is tracked separately and composited only for display.
type Board struct {
	Width  int
	Height int
	Cells  [][]CellType
}

// NewBoard creates an empty board of the given dimensions.
func NewBoard(width, height int) *Board {
	cells := make([][]CellType, height)
	for y := range cells {
		cells[y] = make([]CellType, width)
	}
	return &Board{Width: width, Height: height, Cells: cells}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	nb := NewBoard(b.Width, b.Height)
	for y := range b.Cells {
		copy(nb.Cells[y], b.Cells[y])
	}
	return nb
}

// Cell returns the tag at (x, y). Out-of-bounds coordinates read as empty.
func (b *Board) Cell(x, y int) CellType {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return CellEmpty
	}
	return b.Cells[y][x]
}

// rowFull reports whether every cell of row y is occupied.
func (b *Board) rowFull(y int) bool {
	for x := 0; x < b.Width; x++ {
		if b.Cells[y][x] == CellEmpty {
			return false
		}
	}
	return true
}
