package domain

// ─── Transition Results ─────────────────────────────────────────────────────
// A TransitionResult is the single source of truth the caller uses to
// drive user-facing notifications: it enumerates every state change a
// transition produced, nothing more and nothing less.

// LevelUp describes a level change within one transition.
type LevelUp struct {
	LeveledUp    bool `json:"leveled_up"`
	OldLevel     int  `json:"old_level"`
	NewLevel     int  `json:"new_level"`
	LevelsGained int  `json:"levels_gained"`
	IsMaxLevel   bool `json:"is_max_level"`
}

// Title is a named rank the hero earns by level.
type Title struct {
	Level       int    `json:"level"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// TitleChange reports a title transition caused by a level-up.
type TitleChange struct {
	Changed bool  `json:"changed"`
	Old     Title `json:"old"`
	New     Title `json:"new"`
}

// StreakUpdate is the outcome of recording one day of activity.
type StreakUpdate struct {
	Updated     bool `json:"updated"`
	Streak      int  `json:"streak"`
	IsNewRecord bool `json:"is_new_record"`
}

// TransitionResult describes everything a single progression transition
// changed on the hero.
type TransitionResult struct {
	LevelUp LevelUp      `json:"level_up"`
	Title   TitleChange  `json:"title"`
	Streak  StreakUpdate `json:"streak"`

	// Unlocked lists newly granted achievements in catalog order.
	Unlocked []AchievementDefinition `json:"unlocked"`

	// MissionReward is the XP/gold applied for the mission itself.
	// TotalReward aggregates the rewards of all newly unlocked
	// achievements in this transition.
	MissionReward Reward `json:"mission_reward"`
	TotalReward   Reward `json:"total_reward"`
}
