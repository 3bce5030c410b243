package progression_test

import (
	"errors"
	"testing"

	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/domain"
)

func newEvaluator(t *testing.T) *progression.Evaluator {
	t.Helper()
	return progression.NewEvaluator(progression.DefaultCatalog())
}

func idsOf(defs []domain.AchievementDefinition) []string {
	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids
}

// ═══════════════════════════════════════════════════════════════════════════
// Achievement Evaluator Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestEvaluate_FreshHeroMatchesNothing(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))

	// Empty stat map reads as all-zero: no threshold met, no error.
	if got := eval.Evaluate(hero, domain.EventContext{}); len(got) != 0 {
		t.Errorf("fresh hero unlocked %v, want nothing", idsOf(got))
	}
}

func TestEvaluate_StatThreshold(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 1)

	got := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	if len(got) != 1 || got[0] != "first_mission" {
		t.Errorf("unlocked = %v, want [first_mission]", got)
	}
}

func TestEvaluate_AtLeastSemantics(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))

	// Overshooting a threshold still matches: 12 >= 10.
	hero.Stats.Set(domain.StatMissionsCompleted, 12)
	got := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	want := map[string]bool{"first_mission": true, "mission_veteran": true}
	if len(got) != 2 || !want[got[0]] || !want[got[1]] {
		t.Errorf("unlocked = %v, want first_mission and mission_veteran", got)
	}
}

func TestEvaluate_CatalogOrder(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 1)

	// A late-completion event plus a met stat trigger: results follow
	// catalog declaration order, missions before special.
	got := idsOf(eval.Evaluate(hero, domain.EventContext{LateCompletion: true}))
	if len(got) != 2 || got[0] != "first_mission" || got[1] != "night_owl" {
		t.Errorf("unlocked = %v, want [first_mission night_owl]", got)
	}
}

func TestEvaluate_SkipsAlreadyUnlocked(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 1)
	hero.Achievements = append(hero.Achievements, "first_mission")

	if got := eval.Evaluate(hero, domain.EventContext{}); len(got) != 0 {
		t.Errorf("unlocked = %v, want nothing for an already-granted id", idsOf(got))
	}
}

func TestEvaluate_Pure(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 1)
	hero.XP = 42

	first := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	second := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	if len(first) != len(second) || first[0] != second[0] {
		t.Errorf("repeat evaluation differs: %v vs %v", first, second)
	}
	if hero.XP != 42 || len(hero.Achievements) != 0 {
		t.Error("evaluation mutated the hero")
	}
}

func TestEvaluate_LevelTrigger(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Level = 10

	got := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	if len(got) != 2 || got[0] != "level_up" || got[1] != "experienced" {
		t.Errorf("unlocked = %v, want [level_up experienced]", got)
	}
}

func TestEvaluate_StreakTriggerReadsLongest(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatLongestStreak, 7)

	got := idsOf(eval.Evaluate(hero, domain.EventContext{}))
	if len(got) != 2 || got[0] != "streak_starter" || got[1] != "streak_keeper" {
		t.Errorf("unlocked = %v, want [streak_starter streak_keeper]", got)
	}
}

func TestEvaluate_EventFlag(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))

	got := idsOf(eval.Evaluate(hero, domain.EventContext{EarlyCompletion: true}))
	if len(got) != 1 || got[0] != "early_bird" {
		t.Errorf("unlocked = %v, want [early_bird]", got)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Achievement Progress Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestProgressFor_Counter(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 5)

	p, err := eval.ProgressFor("mission_veteran", hero)
	if err != nil {
		t.Fatalf("ProgressFor: %v", err)
	}
	if p.Current != 5 || p.Required != 10 || p.Percentage != 50 {
		t.Errorf("progress = %+v, want {5 10 50}", p)
	}
}

func TestProgressFor_CappedAtRequired(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	hero.Stats.Set(domain.StatMissionsCompleted, 25)

	p, err := eval.ProgressFor("mission_veteran", hero)
	if err != nil {
		t.Fatalf("ProgressFor: %v", err)
	}
	if p.Current != 10 || p.Percentage != 100 {
		t.Errorf("progress = %+v, want current capped at 10", p)
	}
}

func TestProgressFor_EventFlagBinary(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))

	p, err := eval.ProgressFor("early_bird", hero)
	if err != nil {
		t.Fatalf("ProgressFor: %v", err)
	}
	if p.Current != 0 || p.Required != 1 || p.Percentage != 0 {
		t.Errorf("locked event-flag progress = %+v, want {0 1 0}", p)
	}

	hero.Achievements = append(hero.Achievements, "early_bird")
	p, _ = eval.ProgressFor("early_bird", hero)
	if p.Current != 1 || p.Percentage != 100 {
		t.Errorf("unlocked event-flag progress = %+v, want {1 1 100}", p)
	}
}

func TestProgressFor_UnknownID(t *testing.T) {
	eval := newEvaluator(t)
	hero := domain.NewHeroState("h1", "Tester", day(0))
	if _, err := eval.ProgressFor("missing", hero); !errors.Is(err, domain.ErrAchievementNotFound) {
		t.Errorf("err = %v, want ErrAchievementNotFound", err)
	}
}
