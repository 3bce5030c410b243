package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.

var (
	// Caller contract violations. The engine refuses the call and
	// leaves HeroState untouched rather than letting corrupt
	// decrements enter the stats.
	ErrNilHero           = errors.New("hero state is nil")
	ErrNegativeXP        = errors.New("xp gain must not be negative")
	ErrNegativeGold      = errors.New("gold gain must not be negative")
	ErrUnknownDifficulty = errors.New("unknown mission difficulty")
	ErrUnknownStreakKind = errors.New("unknown streak kind")

	// Catalog errors — fatal at load time.
	ErrEmptyAchievementID     = errors.New("achievement id must not be empty")
	ErrDuplicateAchievementID = errors.New("duplicate achievement id")
	ErrInvalidThreshold       = errors.New("achievement threshold must be positive")
	ErrUnknownRarity          = errors.New("unknown achievement rarity")
	ErrNilTrigger             = errors.New("achievement trigger must not be nil")

	// Lookup errors.
	ErrAchievementNotFound = errors.New("achievement not found")
	ErrHeroNotFound        = errors.New("hero not found")
)
