package progression

import (
	"math"

	"github.com/taskhero/taskhero/internal/domain"
)

// Base mission rewards. XP is fixed per difficulty; gold is 40% of the
// base XP scaled by the mission cadence.
var (
	xpByDifficulty = map[domain.Difficulty]int64{
		domain.DifficultyEasy:   10,
		domain.DifficultyMedium: 25,
		domain.DifficultyHard:   50,
	}
	goldMultiplierByType = map[domain.MissionType]int64{
		domain.MissionDaily:    1,
		domain.MissionWeekly:   2,
		domain.MissionCampaign: 3,
	}
)

// MissionReward computes the base reward for a completed mission.
// Unknown difficulty falls back to easy and unknown type to daily; the
// aggregator separately rejects unknown difficulties, so the fallback
// only matters for display callers.
func MissionReward(meta domain.MissionMeta) domain.Reward {
	xp, ok := xpByDifficulty[meta.Difficulty]
	if !ok {
		xp = xpByDifficulty[domain.DifficultyEasy]
	}
	mult, ok := goldMultiplierByType[meta.Type]
	if !ok {
		mult = goldMultiplierByType[domain.MissionDaily]
	}
	baseGold := int64(math.Round(float64(xp) * 0.4))
	return domain.Reward{XP: xp, Gold: baseGold * mult}
}

// AdjustedReward scales a base reward by the bonuses of a level,
// flooring the results.
func AdjustedReward(base domain.Reward, level int) domain.Reward {
	b := BonusesForLevel(level)
	return domain.Reward{
		XP:   int64(math.Floor(float64(base.XP) * b.XPMultiplier)),
		Gold: int64(math.Floor(float64(base.Gold) * b.GoldMultiplier)),
	}
}
