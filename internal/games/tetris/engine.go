package tetris

import (
	"fmt"
	"time"
)

// Config fixes the rules of one engine session. It is validated once at
// construction and immutable afterwards.
type Config struct {
	Width  int
	Height int

	FallInterval    time.Duration // gravity interval at level 1
	MinFallInterval time.Duration // gravity interval floor
	LockDelay       time.Duration // grace period once the piece touches down
	MaxLockResets   int           // contact-time moves allowed per piece
	LinesPerLevel   int           // lines cleared per level-up
	StartLevel      int           // 0 means level 1

	LineScores    [4]int // score per 1/2/3/4 simultaneous clears, times level
	SoftDropBonus int    // per row descended by a drop tick
	HardDropBonus int    // per row descended by a hard drop
}

// DefaultEngineConfig returns the classic 10x20 rule set.
func DefaultEngineConfig() Config {
	return Config{
		Width:           10,
		Height:          20,
		FallInterval:    800 * time.Millisecond,
		MinFallInterval: 100 * time.Millisecond,
		LockDelay:       500 * time.Millisecond,
		MaxLockResets:   15,
		LinesPerLevel:   10,
		LineScores:      [4]int{100, 300, 500, 800},
		SoftDropBonus:   1,
		HardDropBonus:   2,
	}
}

// Validate fails fast on a malformed config; the engine assumes a validated
// config for its entire lifetime.
func (c Config) Validate() error {
	switch {
	case c.Width < 4:
		return fmt.Errorf("tetris: board width %d too small (minimum 4)", c.Width)
	case c.Height < 4:
		return fmt.Errorf("tetris: board height %d too small (minimum 4)", c.Height)
	case c.FallInterval <= 0:
		return fmt.Errorf("tetris: fall interval must be positive, got %v", c.FallInterval)
	case c.MinFallInterval <= 0 || c.MinFallInterval > c.FallInterval:
		return fmt.Errorf("tetris: min fall interval %v must be in (0, %v]", c.MinFallInterval, c.FallInterval)
	case c.LockDelay <= 0:
		return fmt.Errorf("tetris: lock delay must be positive, got %v", c.LockDelay)
	case c.MaxLockResets < 0:
		return fmt.Errorf("tetris: max lock resets must not be negative, got %d", c.MaxLockResets)
	case c.LinesPerLevel <= 0:
		return fmt.Errorf("tetris: lines per level must be positive, got %d", c.LinesPerLevel)
	case c.StartLevel < 0:
		return fmt.Errorf("tetris: start level must not be negative, got %d", c.StartLevel)
	case c.SoftDropBonus < 0 || c.HardDropBonus < 0:
		return fmt.Errorf("tetris: drop bonuses must not be negative")
	}
	for i, s := range c.LineScores {
		if s < 0 {
			return fmt.Errorf("tetris: line score for %d rows must not be negative, got %d", i+1, s)
		}
	}
	return nil
}

// Engine owns one authoritative game session: board, pieces, score, level and
// the lock-delay state machine. It is a plain mutable value with no timers of
// its own: every command runs synchronously, and waiting for the lock deadline
// is the driving loop's job. A single driver must serialize all commands.
type Engine struct {
	cfg Config
	now func() time.Time

	gen   *bagGenerator
	board *Board
	cur   Piece
	next  Piece

	held     *Piece
	holdUsed bool

	score int
	level int
	lines int

	fallInterval time.Duration

	lockPending  bool
	lockDeadline time.Time
	resetsLeft   int

	over bool

	lastCleared []int
	leveledUp   bool
}

// NewEngine creates a session from a validated config and a piece-sequence
// seed. Returns an error if the config is malformed.
func NewEngine(cfg Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg, now: time.Now}
	e.start(seed)
	return e, nil
}

// start reinitializes every session field. Shared by NewEngine and Reset.
func (e *Engine) start(seed int64) {
	e.gen = newBagGenerator(seed)
	e.board = NewBoard(e.cfg.Width, e.cfg.Height)
	e.cur = NewPiece(e.gen.Next(), e.cfg.Width)
	e.next = NewPiece(e.gen.Next(), e.cfg.Width)
	e.held = nil
	e.holdUsed = false
	e.score = 0
	e.level = max(1, e.cfg.StartLevel)
	e.lines = 0
	e.fallInterval = fallSpeed(e.level, e.cfg.FallInterval, e.cfg.MinFallInterval)
	e.lockPending = false
	e.resetsLeft = e.cfg.MaxLockResets
	e.over = false
	e.lastCleared = nil
	e.leveledUp = false
}

// Reset discards the session and reinitializes it as freshly constructed.
func (e *Engine) Reset(seed int64) {
	e.start(seed)
}

// MoveLeft shifts the piece one column left. Blocked moves are silent no-ops.
func (e *Engine) MoveLeft() { e.shift(-1) }

// MoveRight shifts the piece one column right. Blocked moves are silent no-ops.
func (e *Engine) MoveRight() { e.shift(1) }

func (e *Engine) shift(dx int) {
	if e.over {
		return
	}
	if Collides(e.cur, e.board, dx, 0) {
		return
	}
	if !e.spendLockReset() {
		return
	}
	e.cur.X += dx
}

// Rotate turns the piece clockwise, kicking off walls if needed. A rotation
// no kick can salvage is a silent no-op.
func (e *Engine) Rotate() {
	if e.over {
		return
	}
	r, ok := TryRotate(e.cur, e.board)
	if !ok {
		return
	}
	if !e.spendLockReset() {
		return
	}
	e.cur = r
}

// spendLockReset accounts a successful move or rotation against the lock
// budget. While the lock timer runs, each such move consumes one reset and
// cancels the countdown outright; with the budget exhausted it forces an
// immediate lock instead. Returns false if the piece locked and the move must
// not be applied.
func (e *Engine) spendLockReset() bool {
	if !e.lockPending {
		return true
	}
	if e.resetsLeft == 0 {
		e.Lock()
		return false
	}
	e.resetsLeft--
	e.lockPending = false
	return true
}

// SoftDrop advances the piece one row if it can fall, awarding the soft-drop
// bonus and cancelling any pending lock. If the piece is in contact it starts
// the lock countdown instead - or, with the reset budget exhausted, locks
// immediately. Ticking while a countdown already runs leaves it untouched.
func (e *Engine) SoftDrop() {
	if e.over {
		return
	}
	if !Collides(e.cur, e.board, 0, 1) {
		e.cur.Y++
		e.score += e.cfg.SoftDropBonus
		e.lockPending = false
		return
	}
	if e.lockPending {
		return
	}
	if e.resetsLeft == 0 {
		e.Lock()
		return
	}
	e.lockPending = true
	e.lockDeadline = e.now().Add(e.cfg.LockDelay)
}

// GravityTick is the externally scheduled gravity step. It is the same
// operation as SoftDrop invoked on a fixed cadence.
func (e *Engine) GravityTick() { e.SoftDrop() }

// HardDrop moves the piece to its maximal legal descent in one synchronous
// pass, awards the per-row bonus, and locks immediately - never through the
// lock timer.
func (e *Engine) HardDrop() {
	if e.over {
		return
	}
	dy := e.dropDistance()
	e.cur.Y += dy
	e.score += dy * e.cfg.HardDropBonus
	e.Lock()
}

func (e *Engine) dropDistance() int {
	dy := 0
	for !Collides(e.cur, e.board, 0, dy+1) {
		dy++
	}
	return dy
}

// Hold sets the current piece aside, at most once per spawned piece. With no
// piece held yet the queued next piece is promoted and a new next is drawn;
// otherwise the held piece swaps in at the spawn origin. Either branch
// disables holding until the next spawn.
func (e *Engine) Hold() {
	if e.over || e.holdUsed {
		return
	}
	stored := NewPiece(e.cur.Kind, e.cfg.Width)
	if e.held == nil {
		e.cur = e.next
		e.next = NewPiece(e.gen.Next(), e.cfg.Width)
	} else {
		e.cur = *e.held
	}
	e.held = &stored
	e.holdUsed = true
	// The incoming piece is a fresh spawn as far as lock delay is concerned.
	e.lockPending = false
	e.resetsLeft = e.cfg.MaxLockResets
}

// Lock stamps the current piece onto the board, clears and scores completed
// rows, recomputes level and fall speed, and spawns the next piece. If the
// next piece cannot spawn the session becomes terminal. The driver calls this
// when the lock deadline passes; hard drop and budget exhaustion call it
// synchronously.
func (e *Engine) Lock() {
	if e.over {
		return
	}
	res := lockAndClear(e.cur, e.board, e.level, e.cfg.LineScores)
	e.board = res.board
	e.score += res.scoreDelta
	e.lines += len(res.cleared)
	e.lastCleared = res.cleared
	e.leveledUp = false

	if lvl := max(e.level, e.lines/e.cfg.LinesPerLevel+1); lvl > e.level {
		e.level = lvl
		e.fallInterval = fallSpeed(lvl, e.cfg.FallInterval, e.cfg.MinFallInterval)
		e.leveledUp = true
	}

	if Collides(e.next, e.board, 0, 0) {
		e.over = true
		return
	}
	e.cur = e.next
	e.next = NewPiece(e.gen.Next(), e.cfg.Width)
	e.holdUsed = false
	e.lockPending = false
	e.resetsLeft = e.cfg.MaxLockResets
}

// --- Read-only snapshot accessors ---

// Board returns the locked grid. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.cur }

// Next returns the queued piece.
func (e *Engine) Next() Piece { return e.next }

// Held returns the held piece, if any.
func (e *Engine) Held() (Piece, bool) {
	if e.held == nil {
		return Piece{}, false
	}
	return *e.held, true
}

// HoldAvailable reports whether Hold would be accepted for the current piece.
func (e *Engine) HoldAvailable() bool { return !e.holdUsed && !e.over }

// Score returns the session score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Lines returns the total lines cleared this session.
func (e *Engine) Lines() int { return e.lines }

// FallInterval returns the current gravity interval.
func (e *Engine) FallInterval() time.Duration { return e.fallInterval }

// LockDeadline reports whether the lock countdown is running and, if so, when
// it expires. The driver compares this against wall-clock time and calls Lock.
func (e *Engine) LockDeadline() (time.Time, bool) {
	return e.lockDeadline, e.lockPending
}

// LockResetsLeft returns the remaining contact-move budget for this piece.
func (e *Engine) LockResetsLeft() int { return e.resetsLeft }

// GameOver reports whether the session is terminal. Once terminal, every
// command except Reset is a no-op.
func (e *Engine) GameOver() bool { return e.over }

// LastCleared returns the rows removed by the most recent lock, for transient
// animation. The caller acknowledges them with ClearEvents once consumed.
func (e *Engine) LastCleared() []int { return e.lastCleared }

// LeveledUp reports whether the most recent lock raised the level.
func (e *Engine) LeveledUp() bool { return e.leveledUp }

// ClearEvents acknowledges the cleared-rows and level-up events.
func (e *Engine) ClearEvents() {
	e.lastCleared = nil
	e.leveledUp = false
}

// GhostY returns the row the current piece would occupy if hard-dropped now.
// Purely derived; nothing is stored.
func (e *Engine) GhostY() int {
	return e.cur.Y + e.dropDistance()
}
