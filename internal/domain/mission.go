package domain

import "time"

// ─── Mission Metadata ───────────────────────────────────────────────────────
// Mission CRUD lives in the surrounding task tracker; the engine only
// sees the metadata of a completion event.

// Difficulty grades a mission.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Known reports whether the difficulty is a defined grade.
func (d Difficulty) Known() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Stat returns the per-difficulty mission counter key.
func (d Difficulty) Stat() string {
	switch d {
	case DifficultyMedium:
		return StatMissionsMedium
	case DifficultyHard:
		return StatMissionsHard
	default:
		return StatMissionsEasy
	}
}

// MissionType categorizes the mission's cadence.
type MissionType string

const (
	MissionDaily    MissionType = "daily"
	MissionWeekly   MissionType = "weekly"
	MissionCampaign MissionType = "campaign"
)

// Known reports whether the mission type is defined.
func (t MissionType) Known() bool {
	switch t {
	case MissionDaily, MissionWeekly, MissionCampaign:
		return true
	}
	return false
}

// MissionMeta describes the completed mission that triggered a
// progression transition.
type MissionMeta struct {
	Difficulty  Difficulty  `json:"difficulty"`
	Type        MissionType `json:"type"`
	CompletedAt time.Time   `json:"completed_at"`
}

// EventContext carries boolean flags derived from the triggering
// action's timestamp, precomputed by the caller for testability.
type EventContext struct {
	EarlyCompletion bool `json:"early_completion"`
	LateCompletion  bool `json:"late_completion"`
}

// Flag resolves a named event flag.
func (c EventContext) Flag(name string) bool {
	switch name {
	case FlagEarlyCompletion:
		return c.EarlyCompletion
	case FlagLateCompletion:
		return c.LateCompletion
	}
	return false
}

// EventContextAt derives the completion flags from a timestamp:
// early is before 08:00, late is at or after 22:00 local time.
func EventContextAt(t time.Time) EventContext {
	if t.IsZero() {
		return EventContext{}
	}
	return EventContext{
		EarlyCompletion: t.Hour() < 8,
		LateCompletion:  t.Hour() >= 22,
	}
}
