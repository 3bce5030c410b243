// Package metrics provides Prometheus metrics for TaskHero — counters,
// gauges, and histograms for mission completions, progression, streaks,
// and achievements.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Missions ───────────────────────────────────────────────────────────────

// MissionsCompleted tracks completed missions by difficulty.
var MissionsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "missions_completed_total",
	Help:      "Total completed missions.",
}, []string{"difficulty"})

// XPEarned tracks total XP granted across all heroes.
var XPEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "xp_earned_total",
	Help:      "Total XP granted.",
})

// GoldEarned tracks total gold granted across all heroes.
var GoldEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "gold_earned_total",
	Help:      "Total gold granted.",
})

// ─── Progression ────────────────────────────────────────────────────────────

// LevelUps tracks level-up events.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "level_ups_total",
	Help:      "Total level-up events.",
})

// AchievementsUnlocked tracks unlocks by category.
var AchievementsUnlocked = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
}, []string{"category"})

// StreakRecords tracks new personal-best streaks by kind.
var StreakRecords = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "streak_records_total",
	Help:      "Total new-record streak events.",
}, []string{"kind"})

// ─── API ────────────────────────────────────────────────────────────────────

// RequestLatency tracks HTTP request duration in seconds.
var RequestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "taskhero",
	Name:      "request_latency_seconds",
	Help:      "HTTP request duration in seconds.",
	Buckets:   prometheus.DefBuckets,
}, []string{"route"})

// TransitionErrors tracks rejected progression transitions by reason.
var TransitionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "taskhero",
	Name:      "transition_errors_total",
	Help:      "Total rejected progression transitions.",
}, []string{"reason"})
