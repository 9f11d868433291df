package tetris

// Collides reports whether the piece, displaced by (dx, dy), would overlap a
// locked cell or leave the board. Cells above the top edge (negative row) are
// always legal so a freshly spawned piece may overlap the hidden rows.
func Collides(p Piece, b *Board, dx, dy int) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !p.Shape[row][col] {
				continue
			}
			x := p.X + col + dx
			y := p.Y + row + dy
			if x < 0 || x >= b.Width {
				return true
			}
			if y >= b.Height {
				return true
			}
			if y >= 0 && b.Cells[y][x] != CellEmpty {
				return true
			}
		}
	}
	return false
}

// rotated returns the mask turned 90 degrees clockwise: transpose, then
// reverse each row.
func rotated(s Shape) Shape {
	var r Shape
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col][3-row] = s[row][col]
		}
	}
	return r
}

// kickOffsets is the fixed wall-kick search order: left, right, up, up-left,
// up-right. This list and its priority are the authoritative behavior; it is
// intentionally not the per-rotation-state SRS kick table.
var kickOffsets = [][2]int{
	{-1, 0},
	{1, 0},
	{0, -1},
	{-1, -1},
	{1, -1},
}

// TryRotate rotates the piece clockwise, kicking it by the first offset that
// clears the collision test if the in-place rotation is blocked. Returns the
// rotated piece and true, or the zero piece and false if every kick fails.
func TryRotate(p Piece, b *Board) (Piece, bool) {
	r := p
	r.Shape = rotated(p.Shape)
	r.Rotation = (p.Rotation + 1) % 4

	if !Collides(r, b, 0, 0) {
		return r, true
	}
	for _, k := range kickOffsets {
		if !Collides(r, b, k[0], k[1]) {
			r.X += k[0]
			r.Y += k[1]
			return r, true
		}
	}
	return Piece{}, false
}
