package xp

import "math"

// XPRequiredForLevel returns the cumulative XP needed to reach level.
// The curve is 100 × level^1.5, rounded. Level 1 (and below) costs 0.
func XPRequiredForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Round(100 * math.Pow(float64(level), 1.5)))
}

// CalculateLevel returns the largest level L such that
// XPRequiredForLevel(L) <= totalXP. Never returns less than 1;
// negative XP clamps to level 1.
func CalculateLevel(totalXP int) int {
	if totalXP < 0 {
		return 1
	}
	level := 1
	for XPRequiredForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// XPToNextLevel returns the learner's progress within the current level
// and the total XP span of that level.
func XPToNextLevel(totalXP int) (progress, totalNeeded int) {
	if totalXP < 0 {
		totalXP = 0
	}
	level := CalculateLevel(totalXP)
	floor := XPRequiredForLevel(level)
	ceil := XPRequiredForLevel(level + 1)
	return totalXP - floor, ceil - floor
}
