package tetris

import "time"

// fallStep is how much the fall interval shortens per level above 1.
const fallStep = 55 * time.Millisecond

// clearResult is what locking a piece produced: the compacted board, the
// indices of the rows that were removed (pre-compaction coordinates), and the
// score awarded for them.
type clearResult struct {
	board      *Board
	cleared    []int
	scoreDelta int
}

// lockAndClear stamps the piece onto a copy of the board, removes every full
// row bottom-to-top (prepending an empty row at the top for each), and scores
// the clear as table[n-1] * level. Mask cells outside the board vertically are
// silently dropped. Arguments are never mutated; the returned board is always
// a fresh copy with the piece stamped in.
func lockAndClear(p Piece, b *Board, level int, table [4]int) clearResult {
	nb := b.Clone()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !p.Shape[row][col] {
				continue
			}
			y := p.Y + row
			if y < 0 || y >= nb.Height {
				continue
			}
			nb.Cells[y][p.X+col] = p.Cell
		}
	}

	var cleared []int
	for y := nb.Height - 1; y >= 0; y-- {
		if nb.rowFull(y) {
			cleared = append(cleared, y)
		}
	}
	if len(cleared) > 0 {
		rows := make([][]CellType, 0, nb.Height)
		for range cleared {
			rows = append(rows, make([]CellType, nb.Width))
		}
		for y := 0; y < nb.Height; y++ {
			if !nb.rowFull(y) {
				rows = append(rows, nb.Cells[y])
			}
		}
		nb.Cells = rows
	}

	if len(cleared) == 0 {
		return clearResult{board: nb}
	}
	return clearResult{
		board:      nb,
		cleared:    cleared,
		scoreDelta: table[len(cleared)-1] * level,
	}
}

// fallSpeed returns the gravity interval for a level: base shortened by a
// fixed step per level above 1, never below floor. Non-increasing in level.
func fallSpeed(level int, base, floor time.Duration) time.Duration {
	if level < 1 {
		level = 1
	}
	iv := base - time.Duration(level-1)*fallStep
	if iv < floor {
		return floor
	}
	return iv
}
