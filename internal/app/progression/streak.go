// Package progression implements the TaskHero progression engine:
// XP-to-level conversion, day-streak tracking, and achievement rule
// evaluation. Everything here is pure computation over a HeroState
// snapshot — no clock reads, no I/O. The caller supplies "today" and
// persists the result.
package progression

import (
	"fmt"
	"time"

	"github.com/taskhero/taskhero/internal/domain"
)

// RecordActivity applies one day of activity to a streak counter.
// Same day: no-op (idempotent). Yesterday: streak extends. Any longer
// gap, or a cold streak: reset to 1 — today always counts as day one of
// a new streak. Day comparison is calendar-date equality, never
// elapsed-hours math, so time-of-day and DST shifts cannot change the
// outcome.
func RecordActivity(st *domain.StreakState, today time.Time) domain.StreakUpdate {
	day := dateOnly(today)

	if !st.LastActive.IsZero() && sameDay(st.LastActive, day) {
		return domain.StreakUpdate{Updated: false, Streak: st.Current}
	}

	if !st.LastActive.IsZero() && sameDay(st.LastActive, day.AddDate(0, 0, -1)) {
		st.Current++
	} else {
		st.Current = 1
	}

	st.LastActive = day
	if st.Current > st.Longest {
		st.Longest = st.Current
	}

	st.History = append(st.History, domain.StreakDay{Date: day, Streak: st.Current})
	if n := len(st.History); n > domain.StreakHistoryCap {
		st.History = st.History[n-domain.StreakHistoryCap:]
	}

	return domain.StreakUpdate{
		Updated:     true,
		Streak:      st.Current,
		IsNewRecord: st.Current == st.Longest && st.Current > 1,
	}
}

// RecordActivityFor records activity on a hero's named streak counter,
// validating the kind.
func RecordActivityFor(hero *domain.HeroState, kind domain.StreakKind, today time.Time) (domain.StreakUpdate, error) {
	if hero == nil {
		return domain.StreakUpdate{}, domain.ErrNilHero
	}
	if !kind.Known() {
		return domain.StreakUpdate{}, fmt.Errorf("%w: %q", domain.ErrUnknownStreakKind, kind)
	}
	return RecordActivity(hero.Streak(kind), today), nil
}

// StreakStatus is a read-only view of a streak counter for display.
type StreakStatus struct {
	Current        int       `json:"current"`
	Longest        int       `json:"longest"`
	LastActive     time.Time `json:"last_active"`
	IsActive       bool      `json:"is_active"`
	DaysUntilReset int       `json:"days_until_reset"`
}

// StatusOf reports whether a streak is still alive relative to today.
// A streak last active yesterday survives one more day; anything older
// is already lost.
func StatusOf(st *domain.StreakState, today time.Time) StreakStatus {
	day := dateOnly(today)
	status := StreakStatus{
		Current:    st.Current,
		Longest:    st.Longest,
		LastActive: st.LastActive,
	}
	if st.LastActive.IsZero() {
		return status
	}

	switch {
	case sameDay(st.LastActive, day):
		status.IsActive = true
	case sameDay(st.LastActive, day.AddDate(0, 0, -1)):
		status.IsActive = true
		status.DaysUntilReset = 1
	}
	return status
}

// ─── Streak Milestones ──────────────────────────────────────────────────────

// StreakMilestone is a named reward tier for reaching a streak length.
type StreakMilestone struct {
	Days   int           `json:"days"`
	Reward domain.Reward `json:"reward"`
	Title  string        `json:"title"`
}

// streakMilestones is ordered by ascending day count.
var streakMilestones = []StreakMilestone{
	{Days: 3, Reward: domain.Reward{XP: 50, Gold: 25}, Title: "Consistent Beginner"},
	{Days: 7, Reward: domain.Reward{XP: 150, Gold: 75}, Title: "Weekly Warrior"},
	{Days: 14, Reward: domain.Reward{XP: 300, Gold: 150}, Title: "Fortnight Champion"},
	{Days: 30, Reward: domain.Reward{XP: 750, Gold: 375}, Title: "Monthly Legend"},
	{Days: 60, Reward: domain.Reward{XP: 1500, Gold: 750}, Title: "Discipline Master"},
	{Days: 100, Reward: domain.Reward{XP: 3000, Gold: 1500}, Title: "Immortal Consistency"},
}

// StreakMilestones returns the full milestone table.
func StreakMilestones() []StreakMilestone {
	out := make([]StreakMilestone, len(streakMilestones))
	copy(out, streakMilestones)
	return out
}

// NextStreakMilestone returns the first milestone still ahead of the
// given streak length. The second return is false once every milestone
// has been reached.
func NextStreakMilestone(days int) (StreakMilestone, bool) {
	for _, m := range streakMilestones {
		if days < m.Days {
			return m, true
		}
	}
	return StreakMilestone{}, false
}

// ─── Calendar Helpers ───────────────────────────────────────────────────────

// dateOnly truncates a time to midnight of its calendar date,
// preserving the location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// sameDay compares two times by calendar date.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
