package progression

import (
	"fmt"
	"sync"

	"github.com/taskhero/taskhero/internal/domain"
)

// Catalog is an immutable, validated table of achievement definitions.
// Declaration order is preserved — evaluation results and unlock commits
// follow it, which keeps notification ordering deterministic.
type Catalog struct {
	defs []domain.AchievementDefinition
	byID map[string]domain.AchievementDefinition
}

// NewCatalog validates the definitions and builds a catalog. A zero or
// negative threshold, a duplicate or empty id, an unknown rarity, or a
// nil trigger is fatal: the engine must refuse to evaluate rather than
// silently mis-score progress.
func NewCatalog(defs []domain.AchievementDefinition) (*Catalog, error) {
	c := &Catalog{
		defs: make([]domain.AchievementDefinition, len(defs)),
		byID: make(map[string]domain.AchievementDefinition, len(defs)),
	}
	copy(c.defs, defs)

	for _, def := range c.defs {
		if def.ID == "" {
			return nil, domain.ErrEmptyAchievementID
		}
		if _, dup := c.byID[def.ID]; dup {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateAchievementID, def.ID)
		}
		if !def.Rarity.Known() {
			return nil, fmt.Errorf("%w: %q (achievement %q)", domain.ErrUnknownRarity, def.Rarity, def.ID)
		}
		if err := validateTrigger(def); err != nil {
			return nil, err
		}
		c.byID[def.ID] = def
	}
	return c, nil
}

func validateTrigger(def domain.AchievementDefinition) error {
	switch t := def.Trigger.(type) {
	case domain.StatAtLeast:
		if t.Threshold < 1 {
			return fmt.Errorf("%w: achievement %q stat %q", domain.ErrInvalidThreshold, def.ID, t.Stat)
		}
	case domain.LevelAtLeast:
		if t.Level < 1 {
			return fmt.Errorf("%w: achievement %q level", domain.ErrInvalidThreshold, def.ID)
		}
	case domain.StreakAtLeast:
		if t.Days < 1 {
			return fmt.Errorf("%w: achievement %q streak", domain.ErrInvalidThreshold, def.ID)
		}
	case domain.EventFlag:
		if t.Flag == "" {
			return fmt.Errorf("%w: achievement %q event flag", domain.ErrNilTrigger, def.ID)
		}
	case nil:
		return fmt.Errorf("%w: achievement %q", domain.ErrNilTrigger, def.ID)
	}
	return nil
}

// Definitions returns the catalog entries in declaration order.
func (c *Catalog) Definitions() []domain.AchievementDefinition {
	out := make([]domain.AchievementDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Get looks up a definition by id.
func (c *Catalog) Get(id string) (domain.AchievementDefinition, bool) {
	def, ok := c.byID[id]
	return def, ok
}

// Len returns the number of definitions.
func (c *Catalog) Len() int { return len(c.defs) }

// ByCategory returns the definitions in a category, in catalog order.
func (c *Catalog) ByCategory(cat domain.AchievementCategory) []domain.AchievementDefinition {
	var out []domain.AchievementDefinition
	for _, def := range c.defs {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}

// ByRarity returns the definitions of a rarity tier, in catalog order.
func (c *Catalog) ByRarity(r domain.Rarity) []domain.AchievementDefinition {
	var out []domain.AchievementDefinition
	for _, def := range c.defs {
		if def.Rarity == r {
			out = append(out, def)
		}
	}
	return out
}

var (
	defaultCatalogOnce sync.Once
	defaultCatalog     *Catalog
)

// DefaultCatalog returns the process-wide built-in catalog. It is
// validated once at first use and never mutated, so it is safe to share
// across concurrent callers.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		c, err := NewCatalog(defaultDefinitions())
		if err != nil {
			panic("progression: built-in achievement catalog invalid: " + err.Error())
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// defaultDefinitions is the built-in achievement table: 17 achievements
// across 5 categories.
func defaultDefinitions() []domain.AchievementDefinition {
	return []domain.AchievementDefinition{
		// ── Missions ───────────────────────────────────────────────────
		{
			ID: "first_mission", Title: "First Task", Icon: "💻",
			Description: "Complete your first development task",
			Category:    domain.CatMissions, Rarity: domain.RarityCommon,
			Trigger: domain.StatAtLeast{Stat: domain.StatMissionsCompleted, Threshold: 1},
			Reward:  domain.Reward{XP: 50, Gold: 25},
		},
		{
			ID: "mission_veteran", Title: "Seasoned Developer", Icon: "⚡",
			Description: "Complete 10 development tasks",
			Category:    domain.CatMissions, Rarity: domain.RarityUncommon,
			Trigger: domain.StatAtLeast{Stat: domain.StatMissionsCompleted, Threshold: 10},
			Reward:  domain.Reward{XP: 200, Gold: 100},
		},
		{
			ID: "mission_master", Title: "Code Master", Icon: "🚀",
			Description: "Complete 50 development tasks",
			Category:    domain.CatMissions, Rarity: domain.RarityRare,
			Trigger: domain.StatAtLeast{Stat: domain.StatMissionsCompleted, Threshold: 50},
			Reward:  domain.Reward{XP: 500, Gold: 250},
		},
		{
			ID: "mission_legend", Title: "Programming Legend", Icon: "🏆",
			Description: "Complete 100 development tasks",
			Category:    domain.CatMissions, Rarity: domain.RarityLegendary,
			Trigger: domain.StatAtLeast{Stat: domain.StatMissionsCompleted, Threshold: 100},
			Reward:  domain.Reward{XP: 1000, Gold: 500},
		},

		// ── Levels ─────────────────────────────────────────────────────
		{
			ID: "level_up", Title: "Leveling Up", Icon: "📈",
			Description: "Reach level 5",
			Category:    domain.CatLevels, Rarity: domain.RarityCommon,
			Trigger: domain.LevelAtLeast{Level: 5},
			Reward:  domain.Reward{XP: 100, Gold: 50},
		},
		{
			ID: "experienced", Title: "Experienced", Icon: "⭐",
			Description: "Reach level 10",
			Category:    domain.CatLevels, Rarity: domain.RarityUncommon,
			Trigger: domain.LevelAtLeast{Level: 10},
			Reward:  domain.Reward{XP: 300, Gold: 150},
		},
		{
			ID: "expert", Title: "Specialist", Icon: "💎",
			Description: "Reach level 25",
			Category:    domain.CatLevels, Rarity: domain.RarityRare,
			Trigger: domain.LevelAtLeast{Level: 25},
			Reward:  domain.Reward{XP: 750, Gold: 375},
		},
		{
			ID: "master", Title: "Supreme Master", Icon: "🔥",
			Description: "Reach level 50",
			Category:    domain.CatLevels, Rarity: domain.RarityLegendary,
			Trigger: domain.LevelAtLeast{Level: 50},
			Reward:  domain.Reward{XP: 1500, Gold: 750},
		},

		// ── Streaks ────────────────────────────────────────────────────
		{
			ID: "streak_starter", Title: "Streak Starter", Icon: "🔥",
			Description: "Keep a 3-day streak",
			Category:    domain.CatStreaks, Rarity: domain.RarityCommon,
			Trigger: domain.StreakAtLeast{Days: 3},
			Reward:  domain.Reward{XP: 75, Gold: 40},
		},
		{
			ID: "streak_keeper", Title: "Streak Keeper", Icon: "⚡",
			Description: "Keep a 7-day streak",
			Category:    domain.CatStreaks, Rarity: domain.RarityUncommon,
			Trigger: domain.StreakAtLeast{Days: 7},
			Reward:  domain.Reward{XP: 200, Gold: 100},
		},
		{
			ID: "streak_master", Title: "Consistency Master", Icon: "🚀",
			Description: "Keep a 30-day streak",
			Category:    domain.CatStreaks, Rarity: domain.RarityRare,
			Trigger: domain.StreakAtLeast{Days: 30},
			Reward:  domain.Reward{XP: 1000, Gold: 500},
		},

		// ── Resources ──────────────────────────────────────────────────
		{
			ID: "gold_collector", Title: "Gold Collector", Icon: "🎯",
			Description: "Earn 1000 gold in total",
			Category:    domain.CatResources, Rarity: domain.RarityUncommon,
			Trigger: domain.StatAtLeast{Stat: domain.StatTotalGoldEarned, Threshold: 1000},
			Reward:  domain.Reward{XP: 300, Gold: 200},
		},
		{
			ID: "gold_hoarder", Title: "Gold Hoarder", Icon: "💎",
			Description: "Earn 5000 gold in total",
			Category:    domain.CatResources, Rarity: domain.RarityRare,
			Trigger: domain.StatAtLeast{Stat: domain.StatTotalGoldEarned, Threshold: 5000},
			Reward:  domain.Reward{XP: 750, Gold: 500},
		},
		{
			ID: "xp_hunter", Title: "XP Hunter", Icon: "📊",
			Description: "Gain 5000 XP in total",
			Category:    domain.CatResources, Rarity: domain.RarityUncommon,
			Trigger: domain.StatAtLeast{Stat: domain.StatTotalXPGained, Threshold: 5000},
			Reward:  domain.Reward{XP: 500, Gold: 250},
		},

		// ── Special ────────────────────────────────────────────────────
		{
			ID: "early_bird", Title: "Early Bird", Icon: "🌅",
			Description: "Complete a task before 8am",
			Category:    domain.CatSpecial, Rarity: domain.RarityUncommon,
			Trigger: domain.EventFlag{Flag: domain.FlagEarlyCompletion},
			Reward:  domain.Reward{XP: 100, Gold: 50},
		},
		{
			ID: "night_owl", Title: "Night Owl", Icon: "🌙",
			Description: "Complete a task after 10pm",
			Category:    domain.CatSpecial, Rarity: domain.RarityUncommon,
			Trigger: domain.EventFlag{Flag: domain.FlagLateCompletion},
			Reward:  domain.Reward{XP: 100, Gold: 50},
		},
		{
			ID: "perfectionist", Title: "Perfectionist", Icon: "💯",
			Description: "Complete 10 hard tasks",
			Category:    domain.CatSpecial, Rarity: domain.RarityRare,
			Trigger: domain.StatAtLeast{Stat: domain.StatMissionsHard, Threshold: 10},
			Reward:  domain.Reward{XP: 400, Gold: 200},
		},
	}
}
