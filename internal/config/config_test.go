package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}

	want := DefaultTetrisConfig()
	if cfg.Board != want.Board {
		t.Errorf("board = %+v, expected %+v", cfg.Board, want.Board)
	}
	if cfg.Timing != want.Timing {
		t.Errorf("timing = %+v, expected %+v", cfg.Timing, want.Timing)
	}
	if cfg.Rules != want.Rules {
		t.Errorf("rules = %+v, expected %+v", cfg.Rules, want.Rules)
	}
	if cfg.Scoring != want.Scoring {
		t.Errorf("scoring = %+v, expected %+v", cfg.Scoring, want.Scoring)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	yaml := `
board:
  width: 12
  height: 24
timing:
  initial_fall_ms: 600
  min_fall_ms: 80
  lock_delay_ms: 400
rules:
  lines_per_level: 5
  max_lock_resets: 8
scoring:
  line_clears: [40, 100, 300, 1200]
  soft_drop_bonus: 1
  hard_drop_bonus: 2
`
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}

	if cfg.Board.Width != 12 || cfg.Board.Height != 24 {
		t.Errorf("board = %+v, expected 12x24", cfg.Board)
	}
	if cfg.Timing.InitialFallMs != 600 {
		t.Errorf("initial fall = %d, expected 600", cfg.Timing.InitialFallMs)
	}
	if cfg.Scoring.LineClears != [4]int{40, 100, 300, 1200} {
		t.Errorf("line clears = %v", cfg.Scoring.LineClears)
	}
}

func TestLoadTetrisMissingCustomPathFails(t *testing.T) {
	if _, err := LoadTetris(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected an error for a missing custom config")
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	base := DefaultTetrisConfig()

	easy := base
	ApplyTetrisPreset(&easy, DifficultyEasy)
	if easy.Timing.InitialFallMs <= base.Timing.InitialFallMs {
		t.Error("easy should slow gravity")
	}
	if easy.Timing.LockDelayMs <= base.Timing.LockDelayMs {
		t.Error("easy should stretch the lock delay")
	}

	hard := base
	ApplyTetrisPreset(&hard, DifficultyHard)
	if hard.Timing.InitialFallMs >= base.Timing.InitialFallMs {
		t.Error("hard should speed up gravity")
	}
	if hard.Rules.MaxLockResets >= base.Rules.MaxLockResets {
		t.Error("hard should shrink the lock budget")
	}

	fixed := base
	ApplyTetrisPreset(&fixed, DifficultyFixed)
	if fixed != base {
		t.Error("fixed should leave the config untouched")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{"", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) = false", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error(`ValidPreset("nightmare") should be false`)
	}
}
