package progression

// ExpPerLevel is the per-level step: clearing level N costs N*ExpPerLevel.
const ExpPerLevel = 300

type LevelInfo struct {
	Level int `json:"level"`
	// CurrentExp is the experience earned inside the current level.
	CurrentExp int `json:"current_exp"`
	// NextLevelExp is the cost of clearing the current level.
	NextLevelExp int `json:"next_level_exp"`
}

// ComputeLevel walks the cumulative thresholds 300, 900, 1800, ... until totalExp falls short.
func ComputeLevel(totalExp int) LevelInfo {
	if totalExp < 0 {
		totalExp = 0
	}
	level := 1
	levelStart := 0
	for totalExp >= levelStart+level*ExpPerLevel {
		levelStart += level * ExpPerLevel
		level++
	}
	return LevelInfo{
		Level:        level,
		CurrentExp:   totalExp - levelStart,
		NextLevelExp: level * ExpPerLevel,
	}
}
