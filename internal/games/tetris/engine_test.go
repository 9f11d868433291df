package tetris

import (
	"reflect"
	"testing"
	"time"
)

// fakeClock lets tests control the engine's idea of wall-clock time.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

// testEngine builds an engine with the default rules, an optional config
// mutation, and a controllable clock.
func testEngine(t *testing.T, mut func(*Config)) (*Engine, *fakeClock) {
	t.Helper()
	cfg := DefaultEngineConfig()
	if mut != nil {
		mut(&cfg)
	}
	e, err := NewEngine(cfg, 42)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	clock := &fakeClock{t: time.Unix(1000, 0)}
	e.now = clock.now
	return e, clock
}

// groundPiece parks an O piece directly on the floor so the next tick puts it
// in contact.
func groundPiece(e *Engine) {
	p := NewPiece(KindO, e.cfg.Width)
	p.Y = e.cfg.Height - 2 // O occupies mask rows 0-1
	e.cur = p
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		mut  func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative fall interval", func(c *Config) { c.FallInterval = -time.Second }},
		{"floor above base", func(c *Config) { c.MinFallInterval = c.FallInterval + time.Second }},
		{"zero lock delay", func(c *Config) { c.LockDelay = 0 }},
		{"negative resets", func(c *Config) { c.MaxLockResets = -1 }},
		{"zero lines per level", func(c *Config) { c.LinesPerLevel = 0 }},
		{"negative line score", func(c *Config) { c.LineScores[2] = -10 }},
		{"negative drop bonus", func(c *Config) { c.HardDropBonus = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.mut(&cfg)
			if _, err := NewEngine(cfg, 1); err == nil {
				t.Error("expected construction to fail")
			}
		})
	}
}

func TestHardDropScoresAndLocks(t *testing.T) {
	e, _ := testEngine(t, nil)
	e.cur = NewPiece(KindO, e.cfg.Width) // spawn origin, Y=0

	e.HardDrop()

	// O occupies mask rows 0-1, cols 1-2; spawn X is 3 on a width-10 board.
	// Maximal descent from Y=0 is 18 rows, landing on the bottom two rows.
	b := e.Board()
	for _, y := range []int{18, 19} {
		for _, x := range []int{4, 5} {
			if b.Cell(x, y) != CellO {
				t.Errorf("cell (%d,%d) = %v, want O", x, y, b.Cell(x, y))
			}
		}
	}
	if want := 18 * e.cfg.HardDropBonus; e.Score() != want {
		t.Errorf("score = %d, want %d", e.Score(), want)
	}
	if e.GameOver() {
		t.Error("hard drop on an empty board must not end the session")
	}
}

func TestSoftDropMovesAndScores(t *testing.T) {
	e, _ := testEngine(t, nil)
	e.cur = NewPiece(KindO, e.cfg.Width)

	e.SoftDrop()

	if e.cur.Y != 1 {
		t.Errorf("piece Y = %d, want 1", e.cur.Y)
	}
	if e.Score() != e.cfg.SoftDropBonus {
		t.Errorf("score = %d, want %d", e.Score(), e.cfg.SoftDropBonus)
	}
	if _, pending := e.LockDeadline(); pending {
		t.Error("free fall must not start the lock countdown")
	}
}

func TestGravityTickIsSoftDrop(t *testing.T) {
	a, _ := testEngine(t, nil)
	b, _ := testEngine(t, nil)

	a.SoftDrop()
	b.GravityTick()

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("GravityTick must behave exactly like SoftDrop")
	}
}

func TestLockCountdownStartsOnContact(t *testing.T) {
	e, clock := testEngine(t, nil)
	groundPiece(e)

	e.SoftDrop()

	deadline, pending := e.LockDeadline()
	if !pending {
		t.Fatal("contact tick must start the lock countdown")
	}
	if want := clock.t.Add(e.cfg.LockDelay); !deadline.Equal(want) {
		t.Errorf("deadline = %v, want %v", deadline, want)
	}

	// Ticking again while in contact must not restart the countdown.
	clock.advance(200 * time.Millisecond)
	e.SoftDrop()
	if d2, _ := e.LockDeadline(); !d2.Equal(deadline) {
		t.Error("tick while in contact restarted the countdown")
	}
}

func TestSuccessfulMoveCancelsCountdown(t *testing.T) {
	e, _ := testEngine(t, nil)
	groundPiece(e)
	e.SoftDrop()

	before := e.LockResetsLeft()
	e.MoveLeft()

	if _, pending := e.LockDeadline(); pending {
		t.Error("successful move must cancel, not restart, the countdown")
	}
	if e.LockResetsLeft() != before-1 {
		t.Errorf("resets left = %d, want %d", e.LockResetsLeft(), before-1)
	}
}

func TestBlockedMoveChangesNothing(t *testing.T) {
	e, _ := testEngine(t, nil)
	e.cur = NewPiece(KindO, e.cfg.Width)
	e.cur.X = -1 // O cells in mask cols 1-2, flush against the left wall

	before := e.Snapshot()
	e.MoveLeft()

	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("blocked move must be a silent no-op")
	}
}

func TestResetBudgetForcesLock(t *testing.T) {
	e, _ := testEngine(t, func(c *Config) { c.MaxLockResets = 2 })
	groundPiece(e)

	// Burn the whole budget with contact-time moves.
	for i := 0; i < 2; i++ {
		e.SoftDrop() // contact, countdown starts
		e.MoveLeft() // consumes one reset, cancels countdown
	}
	if e.LockResetsLeft() != 0 {
		t.Fatalf("resets left = %d, want 0", e.LockResetsLeft())
	}

	// The next contact tick locks immediately, long before the delay elapses.
	e.SoftDrop()

	if b := e.Board(); b.Cell(2, 19) != CellO {
		t.Errorf("piece was not locked at (2,19): %v", b.Cell(2, 19))
	}
	if e.LockResetsLeft() != e.cfg.MaxLockResets {
		t.Error("budget must be restored for the newly spawned piece")
	}
}

func TestMoveWithExhaustedBudgetForcesLock(t *testing.T) {
	e, _ := testEngine(t, func(c *Config) { c.MaxLockResets = 0 })
	groundPiece(e)

	e.SoftDrop() // contact with zero budget locks at once

	if b := e.Board(); b.Cell(4, 19) != CellO {
		t.Error("contact tick with no budget left must lock immediately")
	}
}

func TestDriverLocksAtDeadline(t *testing.T) {
	e, clock := testEngine(t, nil)
	groundPiece(e)
	e.SoftDrop()

	deadline, pending := e.LockDeadline()
	if !pending {
		t.Fatal("expected a pending lock")
	}

	// The driver owns the waiting: it compares wall-clock time against the
	// stored deadline and invokes Lock when it passes.
	clock.advance(e.cfg.LockDelay + time.Millisecond)
	if clock.now().Before(deadline) {
		t.Fatal("clock did not pass the deadline")
	}
	e.Lock()

	if b := e.Board(); b.Cell(4, 19) != CellO {
		t.Error("piece was not locked after deadline expiry")
	}
}

func TestHoldPromotesNext(t *testing.T) {
	e, _ := testEngine(t, nil)
	curKind := e.cur.Kind
	nextKind := e.next.Kind

	e.Hold()

	held, ok := e.Held()
	if !ok || held.Kind != curKind {
		t.Errorf("held kind = %v, want %v", held.Kind, curKind)
	}
	if e.cur.Kind != nextKind {
		t.Errorf("current kind = %v, want promoted %v", e.cur.Kind, nextKind)
	}
	if e.HoldAvailable() {
		t.Error("holding must be disabled until the next spawn")
	}
}

func TestHoldTwiceIsRejected(t *testing.T) {
	e, _ := testEngine(t, nil)
	e.Hold()

	before := e.Snapshot()
	e.Hold()

	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("second hold without a spawn must change nothing")
	}
}

func TestHoldSwapAndReenableOnSpawn(t *testing.T) {
	e, _ := testEngine(t, nil)
	e.Hold()
	e.HardDrop() // lock promoted piece; spawn re-enables holding

	if !e.HoldAvailable() {
		t.Fatal("spawn must re-enable holding")
	}

	heldKind, _ := e.Held()
	curKind := e.cur.Kind
	e.Hold()

	if e.cur.Kind != heldKind.Kind {
		t.Errorf("swap must bring the held piece back, got %v want %v", e.cur.Kind, heldKind.Kind)
	}
	if h, _ := e.Held(); h.Kind != curKind {
		t.Errorf("swap must store the outgoing piece, got %v want %v", h.Kind, curKind)
	}
	if e.cur.X != NewPiece(e.cur.Kind, e.cfg.Width).X || e.cur.Y != 0 {
		t.Error("swapped-in piece must return at the spawn origin")
	}
}

func TestLevelUpRecomputesFallSpeed(t *testing.T) {
	e, _ := testEngine(t, func(c *Config) { c.LinesPerLevel = 1 })

	// Bottom row full except the two columns an O piece will fill.
	for x := 0; x < e.cfg.Width; x++ {
		if x == 4 || x == 5 {
			continue
		}
		e.board.Cells[19][x] = CellT
		e.board.Cells[18][x] = CellT
	}
	e.cur = NewPiece(KindO, e.cfg.Width)

	base := e.FallInterval()
	e.HardDrop()

	if e.Lines() != 2 {
		t.Fatalf("lines = %d, want 2", e.Lines())
	}
	if e.Level() != 3 {
		t.Errorf("level = %d, want 3", e.Level())
	}
	if !e.LeveledUp() {
		t.Error("level-up flag must be set for the caller to consume")
	}
	if e.FallInterval() >= base {
		t.Errorf("fall interval %v must shrink after a level-up (was %v)", e.FallInterval(), base)
	}

	e.ClearEvents()
	if e.LeveledUp() || e.LastCleared() != nil {
		t.Error("ClearEvents must reset both event fields")
	}
}

func TestClearedRowsSurfacedOnce(t *testing.T) {
	e, _ := testEngine(t, nil)
	for x := 0; x < e.cfg.Width; x++ {
		if x == 4 || x == 5 {
			continue
		}
		e.board.Cells[19][x] = CellT
		e.board.Cells[18][x] = CellT
	}
	e.cur = NewPiece(KindO, e.cfg.Width)

	e.HardDrop()

	rows := e.LastCleared()
	if !reflect.DeepEqual(rows, []int{19, 18}) {
		t.Errorf("cleared rows = %v, want [19 18]", rows)
	}
	e.ClearEvents()
	if e.LastCleared() != nil {
		t.Error("acknowledged rows must not reappear")
	}
}

func TestGameOverOnBlockedSpawn(t *testing.T) {
	e, _ := testEngine(t, nil)

	// Wall off the spawn rows so whatever spawns next cannot fit. Columns 0, 1
	// and the right edge stay open so no row completes when the last piece
	// locks.
	for y := 0; y < 4; y++ {
		for x := 2; x < e.cfg.Width-1; x++ {
			e.board.Cells[y][x] = CellT
		}
	}
	e.cur = NewPiece(KindO, e.cfg.Width)
	e.cur.X = -1 // O cells over columns 0-1, the open lane
	e.HardDrop()

	if !e.GameOver() {
		t.Fatal("blocked spawn must end the session")
	}

	// Once terminal, every command except Reset is a no-op.
	before := e.Snapshot()
	e.MoveLeft()
	e.Rotate()
	e.SoftDrop()
	e.HardDrop()
	e.Hold()
	if !reflect.DeepEqual(before, e.Snapshot()) {
		t.Error("commands after game over must change nothing")
	}

	e.Reset(42)
	if e.GameOver() {
		t.Error("reset must leave a fresh, playable session")
	}
}

func TestResetRoundTrip(t *testing.T) {
	e, _ := testEngine(t, nil)
	initial := e.Snapshot()

	e.MoveLeft()
	e.Rotate()
	e.SoftDrop()
	e.HardDrop()
	e.Hold()

	e.Reset(42)

	if !reflect.DeepEqual(initial, e.Snapshot()) {
		t.Error("reset with the same seed must reproduce the initial snapshot")
	}
}

func TestStartLevel(t *testing.T) {
	e, _ := testEngine(t, func(c *Config) { c.StartLevel = 5 })

	if e.Level() != 5 {
		t.Errorf("level = %d, want 5", e.Level())
	}
	if e.FallInterval() >= DefaultEngineConfig().FallInterval {
		t.Error("starting above level 1 must start with faster gravity")
	}
}
