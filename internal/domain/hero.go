// Package domain holds the pure types of the TaskHero progression engine.
// The engine drives a gamified task tracker: heroes earn XP and gold by
// completing missions, which feeds levels, streaks, and achievements.
// Domain types carry no behavior beyond invariant helpers — no I/O.
package domain

import "time"

// GoldCap is the maximum spendable gold balance. Cumulative earned
// counters in Stats are never clamped, only the balance is — otherwise
// high-value gold achievements would become unreachable once the cap
// is hit.
const GoldCap int64 = 9999

// ─── Streak Types ───────────────────────────────────────────────────────────

// StreakKind names an independent day-streak counter.
type StreakKind string

const (
	StreakDailyMissions StreakKind = "daily_missions"
	StreakXPGain        StreakKind = "xp_gain"
	StreakLogin         StreakKind = "login"
	StreakAchievements  StreakKind = "achievements"
)

// Known reports whether the kind is one of the defined streak counters.
func (k StreakKind) Known() bool {
	switch k {
	case StreakDailyMissions, StreakXPGain, StreakLogin, StreakAchievements:
		return true
	}
	return false
}

// StreakDay is one history entry: the streak value held on a given day.
type StreakDay struct {
	Date   time.Time `json:"date"`
	Streak int       `json:"streak"`
}

// StreakState tracks consecutive days of activity for one StreakKind.
// Invariant: Longest >= Current. LastActive is a calendar date; the zero
// value means the streak has never been started.
type StreakState struct {
	Current    int         `json:"current"`
	Longest    int         `json:"longest"`
	LastActive time.Time   `json:"last_active"`
	History    []StreakDay `json:"history"`
}

// StreakHistoryCap bounds the per-streak history; oldest entries are
// evicted first.
const StreakHistoryCap = 100

// ─── Stats ──────────────────────────────────────────────────────────────────

// Stat keys consumed by achievement predicates. Missing keys read as 0 so
// new counters can be added without touching historical hero records.
const (
	StatMissionsCompleted    = "missions_completed"
	StatTotalXPGained        = "total_xp_gained"
	StatTotalGoldEarned      = "total_gold_earned"
	StatCurrentStreak        = "current_streak"
	StatLongestStreak        = "longest_streak"
	StatLevelsGained         = "levels_gained"
	StatAchievementsUnlocked = "achievements_unlocked"
	StatAchievementXP        = "achievement_xp"
	StatAchievementGold      = "achievement_gold"
	StatMissionsEasy         = "missions_easy"
	StatMissionsMedium       = "missions_medium"
	StatMissionsHard         = "missions_hard"
)

// Stats is the hero's cumulative counter map. Counters are
// increment-only except where explicitly reset.
type Stats map[string]int64

// Get returns the counter value, treating missing keys as 0.
func (s Stats) Get(key string) int64 {
	return s[key]
}

// Add increments a counter by delta.
func (s Stats) Add(key string, delta int64) {
	s[key] += delta
}

// Set overwrites a counter (used for mirrored values like current_streak).
func (s Stats) Set(key string, value int64) {
	s[key] = value
}

// ─── Level Bonuses ──────────────────────────────────────────────────────────

// LevelBonuses are derived per-level multipliers and caps. They are a
// pure function of Level and are recomputed on every transition, never
// accumulated incrementally.
type LevelBonuses struct {
	GoldMultiplier float64 `json:"gold_multiplier"`
	XPMultiplier   float64 `json:"xp_multiplier"`
	MaxEnergy      int     `json:"max_energy"`
	MaxHealth      int     `json:"max_health"`
}

// ─── Hero State ─────────────────────────────────────────────────────────────

// HeroState is the full progression record for one user. It is owned by
// the caller and mutated only through the progression package's
// transition functions.
type HeroState struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Level int   `json:"level"` // invariant: Level == LevelForXP(XP)
	XP    int64 `json:"xp"`    // cumulative, monotonically non-decreasing
	Gold  int64 `json:"gold"`  // spendable balance, clamped to [0, GoldCap]

	Bonuses LevelBonuses `json:"bonuses"`

	// Achievements is insertion-ordered and append-only; an id appears
	// at most once.
	Achievements []string `json:"achievements"`

	Streaks map[StreakKind]*StreakState `json:"streaks"`
	Stats   Stats                       `json:"stats"`

	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// HeroSummary is the listing view of a hero.
type HeroSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	XP    int64  `json:"xp"`
	Gold  int64  `json:"gold"`
}

// NewHeroState creates a fresh level-1 hero with zero-valued stats.
func NewHeroState(id, name string, now time.Time) *HeroState {
	return &HeroState{
		ID:    id,
		Name:  name,
		Level: 1,
		Bonuses: LevelBonuses{
			GoldMultiplier: 1.0,
			XPMultiplier:   1.0,
			MaxEnergy:      100,
			MaxHealth:      100,
		},
		Streaks:    make(map[StreakKind]*StreakState),
		Stats:      make(Stats),
		CreatedAt:  now,
		LastActive: now,
	}
}

// HasAchievement reports whether the achievement id is already unlocked.
func (h *HeroState) HasAchievement(id string) bool {
	for _, a := range h.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// Streak returns the state for a kind, initializing an empty counter on
// first use.
func (h *HeroState) Streak(kind StreakKind) *StreakState {
	if h.Streaks == nil {
		h.Streaks = make(map[StreakKind]*StreakState)
	}
	st, ok := h.Streaks[kind]
	if !ok {
		st = &StreakState{}
		h.Streaks[kind] = st
	}
	return st
}

// AddGold applies a delta to the spendable balance, clamping to
// [0, GoldCap]. Cumulative stat counters are the caller's concern.
func (h *HeroState) AddGold(delta int64) {
	h.Gold += delta
	if h.Gold < 0 {
		h.Gold = 0
	}
	if h.Gold > GoldCap {
		h.Gold = GoldCap
	}
}
