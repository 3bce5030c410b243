package progression

import (
	"fmt"
	"math"

	"github.com/taskhero/taskhero/internal/domain"
)

// Evaluator tests catalog entries against hero state. It is pure: no
// mutation of the hero, no clock reads, no I/O. Already-unlocked ids
// are always excluded, so repeated evaluation after a commit is
// naturally idempotent — no achievement is ever granted twice.
type Evaluator struct {
	catalog *Catalog
}

// NewEvaluator creates an evaluator over a validated catalog.
func NewEvaluator(catalog *Catalog) *Evaluator {
	return &Evaluator{catalog: catalog}
}

// Catalog returns the evaluator's catalog.
func (e *Evaluator) Catalog() *Catalog { return e.catalog }

// Evaluate returns every catalog entry the hero newly qualifies for, in
// catalog declaration order. Threshold triggers use >= semantics;
// missing stat keys read as 0.
func (e *Evaluator) Evaluate(hero *domain.HeroState, ctx domain.EventContext) []domain.AchievementDefinition {
	var matches []domain.AchievementDefinition
	for _, def := range e.catalog.defs {
		if hero.HasAchievement(def.ID) {
			continue
		}
		if triggerMet(def.Trigger, hero, ctx) {
			matches = append(matches, def)
		}
	}
	return matches
}

// triggerMet is the single exhaustive match over trigger variants.
func triggerMet(t domain.Trigger, hero *domain.HeroState, ctx domain.EventContext) bool {
	switch t := t.(type) {
	case domain.StatAtLeast:
		return hero.Stats.Get(t.Stat) >= t.Threshold
	case domain.LevelAtLeast:
		return hero.Level >= t.Level
	case domain.StreakAtLeast:
		return hero.Stats.Get(domain.StatLongestStreak) >= int64(t.Days)
	case domain.EventFlag:
		return ctx.Flag(t.Flag)
	}
	return false
}

// ProgressFor reports how close the hero is to an achievement. For
// threshold triggers current is capped at required; event-flag triggers
// are binary — 0% until unlocked, then 100%. Catalog validation
// guarantees required is never zero.
func (e *Evaluator) ProgressFor(id string, hero *domain.HeroState) (domain.AchievementProgress, error) {
	def, ok := e.catalog.Get(id)
	if !ok {
		return domain.AchievementProgress{}, fmt.Errorf("%w: %q", domain.ErrAchievementNotFound, id)
	}

	unlocked := hero.HasAchievement(id)

	var current, required int64
	switch t := def.Trigger.(type) {
	case domain.StatAtLeast:
		current, required = hero.Stats.Get(t.Stat), t.Threshold
	case domain.LevelAtLeast:
		current, required = int64(hero.Level), int64(t.Level)
	case domain.StreakAtLeast:
		current, required = hero.Stats.Get(domain.StatLongestStreak), int64(t.Days)
	case domain.EventFlag:
		required = 1
		if unlocked {
			current = 1
		}
	}

	if current > required {
		current = required
	}
	if current < 0 {
		current = 0
	}

	return domain.AchievementProgress{
		Current:    current,
		Required:   required,
		Percentage: int(math.Round(float64(current) / float64(required) * 100)),
	}, nil
}
