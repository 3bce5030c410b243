package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/taskhero/taskhero/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	// Check file exists
	if _, err := os.Stat(filepath.Join(dir, "state.db")); os.IsNotExist(err) {
		t.Error("state.db should exist")
	}
}

func TestOpen_Ping(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
}

func TestOpen_Idempotent(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("first Open() error: %v", err)
	}
	db.Close()

	// Reopening runs migrations again without error.
	db, err = Open(dir)
	if err != nil {
		t.Fatalf("second Open() error: %v", err)
	}
	db.Close()
}

// ─── Hero CRUD ──────────────────────────────────────────────────────────────

func TestCreateHero(t *testing.T) {
	db := newTestDB(t)

	hero, err := db.CreateHero("Alex", time.Now())
	if err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	if hero.ID == "" {
		t.Error("hero id should be generated")
	}
	if hero.Level != 1 || hero.XP != 0 {
		t.Errorf("fresh hero level/xp = %d/%d, want 1/0", hero.Level, hero.XP)
	}

	got, err := db.GetHero(hero.ID)
	if err != nil {
		t.Fatalf("GetHero() error: %v", err)
	}
	if got.Name != "Alex" {
		t.Errorf("Name = %q, want %q", got.Name, "Alex")
	}
}

func TestGetHero_NotFound(t *testing.T) {
	db := newTestDB(t)
	_, err := db.GetHero("missing")
	if !errors.Is(err, domain.ErrHeroNotFound) {
		t.Errorf("err = %v, want ErrHeroNotFound", err)
	}
}

func TestSaveHero_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	hero, err := db.CreateHero("Alex", now)
	if err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}

	hero.Level = 3
	hero.XP = 250
	hero.Gold = 120
	hero.Achievements = []string{"first_mission", "streak_starter"}
	hero.Stats.Set(domain.StatMissionsCompleted, 12)
	hero.Stats.Set(domain.StatLongestStreak, 4)
	st := hero.Streak(domain.StreakDailyMissions)
	st.Current, st.Longest, st.LastActive = 4, 4, now
	st.History = []domain.StreakDay{{Date: now, Streak: 4}}
	hero.LastActive = now

	if err := db.SaveHero(hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	got, err := db.GetHero(hero.ID)
	if err != nil {
		t.Fatalf("GetHero() error: %v", err)
	}
	if got.Level != 3 || got.XP != 250 || got.Gold != 120 {
		t.Errorf("level/xp/gold = %d/%d/%d, want 3/250/120", got.Level, got.XP, got.Gold)
	}
	if len(got.Achievements) != 2 || got.Achievements[0] != "first_mission" || got.Achievements[1] != "streak_starter" {
		t.Errorf("achievements = %v, unlock order lost", got.Achievements)
	}
	if got.Stats.Get(domain.StatMissionsCompleted) != 12 {
		t.Errorf("missions stat = %d, want 12", got.Stats.Get(domain.StatMissionsCompleted))
	}
	daily := got.Streak(domain.StreakDailyMissions)
	if daily.Current != 4 || daily.Longest != 4 {
		t.Errorf("streak = %d/%d, want 4/4", daily.Current, daily.Longest)
	}
	if len(daily.History) != 1 || daily.History[0].Streak != 4 {
		t.Errorf("streak history not preserved: %+v", daily.History)
	}
}

func TestListUnlockedAchievements(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	hero, err := db.CreateHero("Alex", now)
	if err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	hero.Achievements = []string{"first_mission", "night_owl"}
	hero.LastActive = now
	if err := db.SaveHero(hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	unlocked, err := db.ListUnlockedAchievements(hero.ID)
	if err != nil {
		t.Fatalf("ListUnlockedAchievements() error: %v", err)
	}
	if len(unlocked) != 2 || unlocked[0].ID != "first_mission" || unlocked[1].ID != "night_owl" {
		t.Errorf("unlocked = %+v, unlock order lost", unlocked)
	}
	if unlocked[0].UnlockedAt.IsZero() {
		t.Error("unlock timestamp missing")
	}
}

func TestSaveHero_ReplacesState(t *testing.T) {
	db := newTestDB(t)

	hero, err := db.CreateHero("Alex", time.Now())
	if err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	hero.Stats.Set(domain.StatMissionsCompleted, 1)
	if err := db.SaveHero(hero); err != nil {
		t.Fatalf("SaveHero() error: %v", err)
	}

	hero.Stats.Set(domain.StatMissionsCompleted, 2)
	if err := db.SaveHero(hero); err != nil {
		t.Fatalf("second SaveHero() error: %v", err)
	}

	got, err := db.GetHero(hero.ID)
	if err != nil {
		t.Fatalf("GetHero() error: %v", err)
	}
	if got.Stats.Get(domain.StatMissionsCompleted) != 2 {
		t.Errorf("stat = %d, want 2", got.Stats.Get(domain.StatMissionsCompleted))
	}
}

func TestSaveHero_UnknownID(t *testing.T) {
	db := newTestDB(t)
	hero := domain.NewHeroState("ghost", "Ghost", time.Now())
	if err := db.SaveHero(hero); !errors.Is(err, domain.ErrHeroNotFound) {
		t.Errorf("err = %v, want ErrHeroNotFound", err)
	}
}

func TestListHeroes(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.CreateHero("First", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	if _, err := db.CreateHero("Second", time.Now()); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}

	heroes, err := db.ListHeroes()
	if err != nil {
		t.Fatalf("ListHeroes() error: %v", err)
	}
	if len(heroes) != 2 {
		t.Fatalf("len = %d, want 2", len(heroes))
	}
	if heroes[0].Name != "Second" {
		t.Errorf("listing should be newest first, got %q", heroes[0].Name)
	}
}

func TestDeleteHero(t *testing.T) {
	db := newTestDB(t)

	hero, err := db.CreateHero("Alex", time.Now())
	if err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	if err := db.DeleteHero(hero.ID); err != nil {
		t.Fatalf("DeleteHero() error: %v", err)
	}
	if _, err := db.GetHero(hero.ID); !errors.Is(err, domain.ErrHeroNotFound) {
		t.Errorf("err = %v, want ErrHeroNotFound after delete", err)
	}
	if err := db.DeleteHero(hero.ID); !errors.Is(err, domain.ErrHeroNotFound) {
		t.Errorf("double delete err = %v, want ErrHeroNotFound", err)
	}
}

func TestHeroCount(t *testing.T) {
	db := newTestDB(t)

	n, err := db.HeroCount()
	if err != nil || n != 0 {
		t.Fatalf("HeroCount() = %d, %v, want 0", n, err)
	}
	if _, err := db.CreateHero("Alex", time.Now()); err != nil {
		t.Fatalf("CreateHero() error: %v", err)
	}
	n, err = db.HeroCount()
	if err != nil || n != 1 {
		t.Fatalf("HeroCount() = %d, %v, want 1", n, err)
	}
}
