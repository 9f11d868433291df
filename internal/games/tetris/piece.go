package tetris

// CellType tags a board or piece cell. The zero value is an empty cell;
// the seven piece kinds double as the tag their cells leave on the board.
// Styling is a presentation-layer lookup keyed by this tag - no color data here.
type CellType uint8

const (
	CellEmpty CellType = iota
	CellI
	CellO
	CellT
	CellS
	CellZ
	CellJ
	CellL
)

// String returns a short name for the cell type.
func (c CellType) String() string {
	switch c {
	case CellEmpty:
		return "."
	case CellI:
		return "I"
	case CellO:
		return "O"
	case CellT:
		return "T"
	case CellS:
		return "S"
	case CellZ:
		return "Z"
	case CellJ:
		return "J"
	case CellL:
		return "L"
	default:
		return "?"
	}
}

// Kind identifies one of the seven tetromino kinds.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists all piece kinds in catalog order.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// Shape is a 4x4 row-major occupancy mask. Shapes are values: rotation
// produces a new Shape, never mutates one in place.
type Shape [4][4]bool

// Piece is the falling tetromino: an immutable shape, a cell-type tag, a
// board-space origin, and a rotation index. Rotation replaces the piece
// wholesale because its shape changes.
type Piece struct {
	Kind     Kind
	Cell     CellType
	Shape    Shape
	X, Y     int
	Rotation int
}

// Spawn masks for each kind. Occupied cells sit in the top half of the 4x4
// grid so a freshly spawned piece can overlap the hidden rows above the board.
var shapes = map[Kind]Shape{
	KindI: {
		{false, false, false, false},
		{true, true, true, true},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindO: {
		{false, true, true, false},
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindT: {
		{false, true, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindS: {
		{false, true, true, false},
		{true, true, false, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindZ: {
		{true, true, false, false},
		{false, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindJ: {
		{true, false, false, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
	KindL: {
		{false, false, true, false},
		{true, true, true, false},
		{false, false, false, false},
		{false, false, false, false},
	},
}

var cellForKind = map[Kind]CellType{
	KindI: CellI,
	KindO: CellO,
	KindT: CellT,
	KindS: CellS,
	KindZ: CellZ,
	KindJ: CellJ,
	KindL: CellL,
}

// NewPiece creates a piece of the given kind at its spawn origin for a board
// of the given width: horizontally centered, top row aligned with row 0.
func NewPiece(kind Kind, boardWidth int) Piece {
	return Piece{
		Kind:  kind,
		Cell:  cellForKind[kind],
		Shape: shapes[kind],
		X:     boardWidth/2 - 2,
		Y:     0,
	}
}

// Occupied reports whether the mask cell (row, col) is filled.
func (p Piece) Occupied(row, col int) bool {
	return p.Shape[row][col]
}
