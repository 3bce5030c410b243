package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatMissions  AchievementCategory = "missions"
	CatLevels    AchievementCategory = "levels"
	CatStreaks   AchievementCategory = "streaks"
	CatResources AchievementCategory = "resources"
	CatSpecial   AchievementCategory = "special"
)

// Rarity orders achievements from common to legendary.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rank returns the ordinal of the rarity (common=0 .. legendary=4), or -1
// for an unknown value.
func (r Rarity) Rank() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	}
	return -1
}

// Known reports whether the rarity is a defined tier.
func (r Rarity) Known() bool { return r.Rank() >= 0 }

// ─── Triggers ───────────────────────────────────────────────────────────────

// Event flags computed by the caller from the triggering action's
// timestamp. The evaluator never reads wall-clock time itself.
const (
	FlagEarlyCompletion = "early_completion" // before 08:00
	FlagLateCompletion  = "late_completion"  // at or after 22:00
)

// Trigger is the sealed set of achievement predicates. The evaluator
// does a single exhaustive type switch over these variants, so a new
// trigger kind is a compile-checked addition.
type Trigger interface {
	isTrigger()
}

// StatAtLeast fires when a cumulative stat counter reaches Threshold.
type StatAtLeast struct {
	Stat      string
	Threshold int64
}

// LevelAtLeast fires when the hero's level reaches Level.
type LevelAtLeast struct {
	Level int
}

// StreakAtLeast fires when the longest streak reaches Days.
type StreakAtLeast struct {
	Days int
}

// EventFlag fires when the named boolean flag is set in the event
// context of the triggering action.
type EventFlag struct {
	Flag string
}

func (StatAtLeast) isTrigger()   {}
func (LevelAtLeast) isTrigger()  {}
func (StreakAtLeast) isTrigger() {}
func (EventFlag) isTrigger()     {}

// ─── Definitions ────────────────────────────────────────────────────────────

// Reward is an XP/gold pair granted by an achievement or mission.
type Reward struct {
	XP   int64 `json:"xp"`
	Gold int64 `json:"gold"`
}

// Add returns the element-wise sum of two rewards.
func (r Reward) Add(other Reward) Reward {
	return Reward{XP: r.XP + other.XP, Gold: r.Gold + other.Gold}
}

// IsZero reports whether the reward grants nothing.
func (r Reward) IsZero() bool { return r.XP == 0 && r.Gold == 0 }

// AchievementDefinition is one immutable catalog entry.
type AchievementDefinition struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Rarity      Rarity              `json:"rarity"`
	Trigger     Trigger             `json:"-"`
	Reward      Reward              `json:"reward"`
}

// AchievementProgress describes how close a hero is to an achievement.
type AchievementProgress struct {
	Current    int64 `json:"current"`
	Required   int64 `json:"required"`
	Percentage int   `json:"percentage"`
}

// UnlockedAchievement records when an achievement was earned.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
