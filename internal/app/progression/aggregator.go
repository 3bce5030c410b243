package progression

import (
	"fmt"
	"time"

	"github.com/taskhero/taskhero/internal/domain"
)

// Aggregator is the orchestration entry point the task tracker calls
// after each relevant event. It combines XP application, streak update,
// and achievement evaluation into one transition over the hero, and
// returns a TransitionResult describing everything that changed.
//
// The aggregator is stateless per call and never retains a reference to
// the hero; the caller serializes concurrent transitions for the same
// hero and persists the mutated state.
type Aggregator struct {
	eval *Evaluator
}

// NewAggregator creates an aggregator over a validated catalog.
func NewAggregator(catalog *Catalog) *Aggregator {
	return &Aggregator{eval: NewEvaluator(catalog)}
}

// Evaluator exposes the underlying evaluator for progress queries.
func (a *Aggregator) Evaluator() *Evaluator { return a.eval }

// ApplyMissionCompletion applies the rewards for a completed mission:
// XP and level, stat counters, the daily-mission streak, and any newly
// qualifying achievements. Validation happens before any mutation, so a
// rejected call leaves the hero untouched.
func (a *Aggregator) ApplyMissionCompletion(hero *domain.HeroState, xpGained, goldGained int64, meta domain.MissionMeta) (domain.TransitionResult, error) {
	if hero == nil {
		return domain.TransitionResult{}, domain.ErrNilHero
	}
	if xpGained < 0 {
		return domain.TransitionResult{}, fmt.Errorf("%w: got %d", domain.ErrNegativeXP, xpGained)
	}
	if goldGained < 0 {
		return domain.TransitionResult{}, fmt.Errorf("%w: got %d", domain.ErrNegativeGold, goldGained)
	}
	if !meta.Difficulty.Known() {
		return domain.TransitionResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownDifficulty, meta.Difficulty)
	}

	oldLevel := hero.Level

	// XP and level first; bonuses follow the level.
	hero.XP += xpGained
	a.syncLevel(hero)

	// Stat counters must be current before achievements are evaluated.
	hero.Stats.Add(domain.StatMissionsCompleted, 1)
	hero.Stats.Add(meta.Difficulty.Stat(), 1)
	hero.Stats.Add(domain.StatTotalXPGained, xpGained)
	hero.Stats.Add(domain.StatTotalGoldEarned, goldGained)
	hero.AddGold(goldGained)

	// Streaks: the XP streak only counts days that actually gained XP.
	if xpGained > 0 {
		RecordActivity(hero.Streak(domain.StreakXPGain), meta.CompletedAt)
	}
	streak := RecordActivity(hero.Streak(domain.StreakDailyMissions), meta.CompletedAt)
	a.mirrorStreakStats(hero)

	// Achievements see the fully updated state plus the event context.
	ctx := domain.EventContextAt(meta.CompletedAt)
	unlocked := a.eval.Evaluate(hero, ctx)
	achievementReward := a.commit(hero, unlocked)
	if len(unlocked) > 0 {
		RecordActivity(hero.Streak(domain.StreakAchievements), meta.CompletedAt)
	}

	// Achievement XP may cross another level threshold.
	a.syncLevel(hero)
	if hero.Level > oldLevel {
		hero.Stats.Add(domain.StatLevelsGained, int64(hero.Level-oldLevel))
	}
	if !meta.CompletedAt.IsZero() {
		hero.LastActive = meta.CompletedAt
	}

	return domain.TransitionResult{
		LevelUp:       levelUpBetween(oldLevel, hero.Level),
		Title:         CheckTitleChange(oldLevel, hero.Level),
		Streak:        streak,
		Unlocked:      unlocked,
		MissionReward: domain.Reward{XP: xpGained, Gold: goldGained},
		TotalReward:   achievementReward,
	}, nil
}

// ApplyXPGain applies XP from a non-mission source (streak milestone,
// manual grant): level, the XP-gain streak, and achievement evaluation
// without touching mission counters.
func (a *Aggregator) ApplyXPGain(hero *domain.HeroState, amount int64, at time.Time) (domain.TransitionResult, error) {
	if hero == nil {
		return domain.TransitionResult{}, domain.ErrNilHero
	}
	if amount <= 0 {
		return domain.TransitionResult{}, fmt.Errorf("%w: got %d", domain.ErrNegativeXP, amount)
	}

	oldLevel := hero.Level

	hero.XP += amount
	a.syncLevel(hero)
	hero.Stats.Add(domain.StatTotalXPGained, amount)

	streak := RecordActivity(hero.Streak(domain.StreakXPGain), at)

	unlocked := a.eval.Evaluate(hero, domain.EventContext{})
	achievementReward := a.commit(hero, unlocked)
	if len(unlocked) > 0 {
		RecordActivity(hero.Streak(domain.StreakAchievements), at)
	}

	a.syncLevel(hero)
	if hero.Level > oldLevel {
		hero.Stats.Add(domain.StatLevelsGained, int64(hero.Level-oldLevel))
	}
	if !at.IsZero() {
		hero.LastActive = at
	}

	return domain.TransitionResult{
		LevelUp:       levelUpBetween(oldLevel, hero.Level),
		Title:         CheckTitleChange(oldLevel, hero.Level),
		Streak:        streak,
		Unlocked:      unlocked,
		MissionReward: domain.Reward{XP: amount},
		TotalReward:   achievementReward,
	}, nil
}

// RecordLogin records a day of presence on the login streak. Login
// alone grants no rewards and unlocks no achievements.
func (a *Aggregator) RecordLogin(hero *domain.HeroState, today time.Time) (domain.StreakUpdate, error) {
	if hero == nil {
		return domain.StreakUpdate{}, domain.ErrNilHero
	}
	update := RecordActivity(hero.Streak(domain.StreakLogin), today)
	if update.Updated && !today.IsZero() {
		hero.LastActive = today
	}
	return update, nil
}

// commit appends newly matched achievements in evaluation order, grants
// their rewards, and bumps the achievement stat counters. Achievement
// rewards deliberately do not feed total_xp_gained/total_gold_earned —
// those track earned-by-doing counters only.
func (a *Aggregator) commit(hero *domain.HeroState, unlocked []domain.AchievementDefinition) domain.Reward {
	var total domain.Reward
	for _, def := range unlocked {
		hero.Achievements = append(hero.Achievements, def.ID)
		hero.XP += def.Reward.XP
		hero.AddGold(def.Reward.Gold)
		hero.Stats.Add(domain.StatAchievementsUnlocked, 1)
		hero.Stats.Add(domain.StatAchievementXP, def.Reward.XP)
		hero.Stats.Add(domain.StatAchievementGold, def.Reward.Gold)
		total = total.Add(def.Reward)
	}
	return total
}

// syncLevel re-derives level and bonuses from cumulative XP, keeping
// the level == LevelForXP(xp) invariant after every mutation.
func (a *Aggregator) syncLevel(hero *domain.HeroState) {
	level := LevelForXP(hero.XP)
	if level != hero.Level {
		hero.Level = level
		hero.Bonuses = BonusesForLevel(level)
	}
}

// mirrorStreakStats copies the daily-mission streak into the stat map
// consumed by streak-trigger achievements.
func (a *Aggregator) mirrorStreakStats(hero *domain.HeroState) {
	daily := hero.Streak(domain.StreakDailyMissions)
	hero.Stats.Set(domain.StatCurrentStreak, int64(daily.Current))
	if int64(daily.Longest) > hero.Stats.Get(domain.StatLongestStreak) {
		hero.Stats.Set(domain.StatLongestStreak, int64(daily.Longest))
	}
}

func levelUpBetween(oldLevel, newLevel int) domain.LevelUp {
	return domain.LevelUp{
		LeveledUp:    newLevel > oldLevel,
		OldLevel:     oldLevel,
		NewLevel:     newLevel,
		LevelsGained: max(0, newLevel-oldLevel),
		IsMaxLevel:   newLevel >= MaxLevel,
	}
}
