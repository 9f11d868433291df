// Package config provides YAML-based game configuration loading and
// difficulty management for the tetris platform.
package config

// TetrisConfig contains all tunable rules for a tetris session.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines gravity and lock-delay timing, in milliseconds.
type TimingConfig struct {
	InitialFallMs int `yaml:"initial_fall_ms"`
	MinFallMs     int `yaml:"min_fall_ms"`
	LockDelayMs   int `yaml:"lock_delay_ms"`
}

// RulesConfig defines progression and lock-budget rules.
type RulesConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
	MaxLockResets int `yaml:"max_lock_resets"`
}

// ScoringConfig defines the score table. LineClears has exactly four entries,
// for 1/2/3/4 simultaneous clears; each is multiplied by the current level.
type ScoringConfig struct {
	LineClears    [4]int `yaml:"line_clears"`
	SoftDropBonus int    `yaml:"soft_drop_bonus"`
	HardDropBonus int    `yaml:"hard_drop_bonus"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
