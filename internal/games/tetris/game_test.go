package tetris

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func testRuntimeConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func TestGameDeterministicForSeed(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntimeConfig())
	g2 := New()
	g2.Reset(testRuntimeConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	for i := 0; i < 10; i++ {
		g1.Step(input)
		g2.Step(input)
	}

	s1, s2 := g1.State(), g2.State()
	if s1 != s2 {
		t.Errorf("same seed and input diverged: %+v vs %+v", s1, s2)
	}
}

func TestGameHardDropScores(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionHardDrop)
	result := g.Step(input)

	if result.State.Score <= 0 {
		t.Errorf("hard drop from spawn must award the per-row bonus, score = %d", result.State.Score)
	}
}

func TestGamePauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("pause action must pause the game")
	}

	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	before := g.eng.Snapshot()
	g.Step(drop)

	if g.eng.Snapshot().Score != before.Score {
		t.Error("commands while paused must not reach the engine")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("pause must toggle off")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	// Force a terminal session and let one step observe it.
	for y := 0; y < 4; y++ {
		for x := 1; x < g.eng.cfg.Width-1; x++ {
			g.eng.board.Cells[y][x] = CellT
		}
	}
	drop := core.NewInputFrame()
	drop.Set(core.ActionHardDrop)
	g.Step(drop)

	if !g.State().GameOver {
		t.Fatal("expected game over after dropping onto a walled spawn")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.State().GameOver {
		t.Error("restart must produce a fresh session")
	}
	if g.State().Score != 0 {
		t.Errorf("fresh session score = %d, want 0", g.State().Score)
	}
}

func TestGameRendersWithoutPanic(t *testing.T) {
	g := New()
	g.Reset(testRuntimeConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The HUD and the playfield frame must be on screen.
	if screen.Get(1, 0) != 'T' {
		t.Errorf("HUD missing, row 0 starts with %q", screen.Row(0))
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, TickRate: 60, Seed: 1})

	if !g.tooSmall {
		t.Fatal("a 10x5 screen cannot fit the playfield")
	}

	// Stepping and rendering must both stay safe.
	g.Step(core.NewInputFrame())
	screen := core.NewScreen(10, 5)
	g.Render(screen)
}
