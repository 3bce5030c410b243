package progression

import (
	"math"

	"github.com/taskhero/taskhero/internal/domain"
)

// Level curve constants. XP required to advance from level n to n+1 is
// floor(BaseXP * GrowthRate^(n-1)); the curve is a strictly increasing
// step function capped at MaxLevel.
const (
	BaseXP     = 100
	GrowthRate = 1.2
	MaxLevel   = 100
)

// XPForNextLevel returns the XP needed to advance from level to
// level+1. Returns 0 at or beyond MaxLevel — XP still accumulates there
// but the level freezes.
func XPForNextLevel(level int) int64 {
	if level < 1 || level >= MaxLevel {
		return 0
	}
	return int64(math.Floor(BaseXP * math.Pow(GrowthRate, float64(level-1))))
}

// CumulativeXPForLevel returns the total XP required to reach a level:
// the prefix sum of the per-level increments for levels 2..L.
func CumulativeXPForLevel(level int) int64 {
	if level > MaxLevel {
		level = MaxLevel
	}
	var total int64
	for l := 1; l < level; l++ {
		total += XPForNextLevel(l)
	}
	return total
}

// LevelForXP returns the largest level whose cumulative threshold does
// not exceed xp. Zero or negative XP yields level 1.
func LevelForXP(xp int64) int {
	if xp <= 0 {
		return 1
	}
	level := 1
	var spent int64
	for level < MaxLevel {
		step := XPForNextLevel(level)
		if spent+step > xp {
			break
		}
		spent += step
		level++
	}
	return level
}

// LevelProgress describes position within the current level.
type LevelProgress struct {
	Current    int64   `json:"current"`
	Needed     int64   `json:"needed"`
	Percentage float64 `json:"percentage"`
}

// ProgressForXP returns progress toward the next level, with the
// percentage rounded to two decimal places. At max level progress is
// pinned to 100%.
func ProgressForXP(xp int64) LevelProgress {
	level := LevelForXP(xp)
	if level >= MaxLevel {
		return LevelProgress{Current: 0, Needed: 0, Percentage: 100}
	}

	current := xp - CumulativeXPForLevel(level)
	if current < 0 {
		current = 0
	}
	needed := XPForNextLevel(level)

	pct := 100.0
	if needed > 0 {
		pct = math.Round(float64(current)/float64(needed)*100*100) / 100
	}
	return LevelProgress{Current: current, Needed: needed, Percentage: pct}
}

// BonusesForLevel computes the per-level bonuses. Bonuses are linear in
// level and always recomputed from it — never incrementally accumulated,
// so they cannot drift out of sync with the level.
func BonusesForLevel(level int) domain.LevelBonuses {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	n := level - 1
	return domain.LevelBonuses{
		GoldMultiplier: 1 + float64(n)*0.10,
		XPMultiplier:   1 + float64(n)*0.05,
		MaxEnergy:      100 + n*5,
		MaxHealth:      100 + n*10,
	}
}

// CheckLevelUp compares the levels implied by two XP totals.
func CheckLevelUp(oldXP, newXP int64) domain.LevelUp {
	oldLevel := LevelForXP(oldXP)
	newLevel := LevelForXP(newXP)
	return domain.LevelUp{
		LeveledUp:    newLevel > oldLevel,
		OldLevel:     oldLevel,
		NewLevel:     newLevel,
		LevelsGained: max(0, newLevel-oldLevel),
		IsMaxLevel:   newLevel >= MaxLevel,
	}
}
