package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the classic rule set used when no config file
// is found and the embedded default cannot be parsed.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			InitialFallMs: 800,
			MinFallMs:     100,
			LockDelayMs:   500,
		},
		Rules: RulesConfig{
			LinesPerLevel: 10,
			MaxLockResets: 15,
		},
		Scoring: ScoringConfig{
			LineClears:    [4]int{100, 300, 500, 800},
			SoftDropBonus: 1,
			HardDropBonus: 2,
		},
	}
}
