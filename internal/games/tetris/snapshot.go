package tetris

import "time"

// GameStateType represents the current session state.
type GameStateType string

const (
	StateFalling  GameStateType = "falling"
	StateContact  GameStateType = "contact" // lock countdown running
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the engine state for determinism testing and for drivers
// that want one coherent read instead of individual accessors.
type Snapshot struct {
	Width, Height int
	Cells         [][]CellType // locked board, falling piece not composited

	Current  Piece
	Next     Piece
	Held     *Piece
	CanHold  bool
	GhostY   int

	Score int
	Level int
	Lines int

	FallInterval time.Duration
	LockPending  bool
	LockDeadline time.Time
	ResetsLeft   int

	LastCleared []int
	LeveledUp   bool

	State GameStateType
}

// Snapshot returns a copy of the full engine state. The board cells are
// deep-copied so the caller can keep the snapshot across further commands.
func (e *Engine) Snapshot() Snapshot {
	state := StateFalling
	switch {
	case e.over:
		state = StateGameOver
	case e.lockPending:
		state = StateContact
	}

	var held *Piece
	if e.held != nil {
		h := *e.held
		held = &h
	}

	cells := make([][]CellType, e.board.Height)
	for y := range cells {
		cells[y] = make([]CellType, e.board.Width)
		copy(cells[y], e.board.Cells[y])
	}

	return Snapshot{
		Width:        e.board.Width,
		Height:       e.board.Height,
		Cells:        cells,
		Current:      e.cur,
		Next:         e.next,
		Held:         held,
		CanHold:      e.HoldAvailable(),
		GhostY:       e.GhostY(),
		Score:        e.score,
		Level:        e.level,
		Lines:        e.lines,
		FallInterval: e.fallInterval,
		LockPending:  e.lockPending,
		LockDeadline: e.lockDeadline,
		ResetsLeft:   e.resetsLeft,
		LastCleared:  append([]int(nil), e.lastCleared...),
		LeveledUp:    e.leveledUp,
		State:        state,
	}
}
