package config

// ApplyTetrisPreset adjusts a loaded config for a named difficulty.
// Easy slows gravity and stretches the lock grace; hard does the opposite and
// halves the lock budget; fixed keeps the config untouched (tournament rules
// straight from the file).
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.InitialFallMs = cfg.Timing.InitialFallMs * 5 / 4
		cfg.Timing.LockDelayMs = cfg.Timing.LockDelayMs * 3 / 2
	case DifficultyHard:
		cfg.Timing.InitialFallMs = cfg.Timing.InitialFallMs * 3 / 4
		cfg.Timing.LockDelayMs = cfg.Timing.LockDelayMs * 2 / 3
		cfg.Rules.MaxLockResets /= 2
	case DifficultyNormal, DifficultyFixed:
		// as configured
	}
}

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return true
	}
	return false
}
