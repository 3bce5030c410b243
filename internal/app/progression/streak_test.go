package progression_test

import (
	"testing"
	"time"

	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/domain"
)

func day(offset int) time.Time {
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, offset)
}

// ═══════════════════════════════════════════════════════════════════════════
// Streak Tracking Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestStreak_FirstActivity(t *testing.T) {
	st := &domain.StreakState{}
	upd := progression.RecordActivity(st, day(0))

	if !upd.Updated {
		t.Error("first activity should update the streak")
	}
	if st.Current != 1 || st.Longest != 1 {
		t.Errorf("current/longest = %d/%d, want 1/1", st.Current, st.Longest)
	}
	if upd.IsNewRecord {
		t.Error("a streak of 1 is never a record")
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	st := &domain.StreakState{}
	for i := 0; i < 5; i++ {
		progression.RecordActivity(st, day(i))
	}
	if st.Current != 5 || st.Longest != 5 {
		t.Errorf("current/longest = %d/%d, want 5/5", st.Current, st.Longest)
	}
}

func TestStreak_SameDayIdempotent(t *testing.T) {
	st := &domain.StreakState{}
	progression.RecordActivity(st, day(0))

	// Second activity on the same calendar day is a no-op.
	upd := progression.RecordActivity(st, day(0).Add(6*time.Hour))
	if upd.Updated {
		t.Error("same-day activity should not update the streak")
	}
	if st.Current != 1 {
		t.Errorf("current = %d, want 1", st.Current)
	}
}

func TestStreak_TimeOfDayIrrelevant(t *testing.T) {
	st := &domain.StreakState{}
	late := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, 3, 11, 0, 1, 0, 0, time.UTC)

	progression.RecordActivity(st, late)
	upd := progression.RecordActivity(st, early)

	if !upd.Updated || st.Current != 2 {
		t.Errorf("adjacent calendar days should extend the streak, got current=%d", st.Current)
	}
}

func TestStreak_GapResetsToOne(t *testing.T) {
	st := &domain.StreakState{}
	for i := 0; i < 3; i++ {
		progression.RecordActivity(st, day(i))
	}

	// A multi-day gap resets to 1 (today counts), not 0.
	upd := progression.RecordActivity(st, day(7))
	if !upd.Updated {
		t.Error("activity after a gap should still count")
	}
	if st.Current != 1 {
		t.Errorf("current = %d, want 1 after gap", st.Current)
	}
	if st.Longest != 3 {
		t.Errorf("longest = %d, want 3 preserved across the reset", st.Longest)
	}
}

func TestStreak_NewRecord(t *testing.T) {
	st := &domain.StreakState{
		Current:    6,
		Longest:    6,
		LastActive: day(-1),
	}
	upd := progression.RecordActivity(st, day(0))

	if st.Current != 7 || st.Longest != 7 {
		t.Errorf("current/longest = %d/%d, want 7/7", st.Current, st.Longest)
	}
	if !upd.IsNewRecord {
		t.Error("extending past the previous longest should be a new record")
	}
}

func TestStreak_BelowLongestIsNotRecord(t *testing.T) {
	st := &domain.StreakState{
		Current:    1,
		Longest:    10,
		LastActive: day(-1),
	}
	upd := progression.RecordActivity(st, day(0))
	if upd.IsNewRecord {
		t.Error("current=2 with longest=10 is not a record")
	}
}

func TestStreak_HistoryCapped(t *testing.T) {
	st := &domain.StreakState{}
	for i := 0; i < domain.StreakHistoryCap+20; i++ {
		progression.RecordActivity(st, day(i))
	}
	if len(st.History) != domain.StreakHistoryCap {
		t.Errorf("history length = %d, want %d", len(st.History), domain.StreakHistoryCap)
	}
	// Oldest entries were evicted: the first retained entry is day 21 of 120.
	if st.History[0].Streak != 21 {
		t.Errorf("oldest retained entry streak = %d, want 21", st.History[0].Streak)
	}
}

func TestStreak_RecordActivityFor(t *testing.T) {
	hero := domain.NewHeroState("h1", "Tester", day(0))

	upd, err := progression.RecordActivityFor(hero, domain.StreakDailyMissions, day(0))
	if err != nil {
		t.Fatalf("RecordActivityFor: %v", err)
	}
	if !upd.Updated {
		t.Error("expected the streak to update")
	}
	if hero.Streak(domain.StreakDailyMissions).Current != 1 {
		t.Error("hero streak state not advanced")
	}
}

func TestStreak_RecordActivityForUnknownKind(t *testing.T) {
	hero := domain.NewHeroState("h1", "Tester", day(0))
	if _, err := progression.RecordActivityFor(hero, "bogus", day(0)); err == nil {
		t.Error("expected error for unknown streak kind")
	}
	if _, err := progression.RecordActivityFor(nil, domain.StreakDailyMissions, day(0)); err == nil {
		t.Error("expected error for nil hero")
	}
}

func TestStreak_StatusOf(t *testing.T) {
	st := &domain.StreakState{Current: 4, LastActive: day(0)}

	status := progression.StatusOf(st, day(0))
	if !status.IsActive {
		t.Errorf("today-active status = %+v", status)
	}

	status = progression.StatusOf(st, day(1))
	if !status.IsActive || status.DaysUntilReset != 1 {
		t.Errorf("yesterday-active status = %+v, want alive with one day left", status)
	}

	status = progression.StatusOf(st, day(3))
	if status.IsActive {
		t.Error("a two-day-stale streak is broken")
	}
}

func TestStreak_Milestones(t *testing.T) {
	m, ok := progression.NextStreakMilestone(0)
	if !ok || m.Days != 3 {
		t.Errorf("next milestone from 0 = %+v, want 3 days", m)
	}

	m, ok = progression.NextStreakMilestone(3)
	if !ok || m.Days != 7 {
		t.Errorf("next milestone from 3 = %+v, want 7 days", m)
	}

	if _, ok := progression.NextStreakMilestone(100); ok {
		t.Error("no milestone remains past 100 days")
	}
}
