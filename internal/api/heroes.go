package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/taskhero/taskhero/internal/app/progression"
	"github.com/taskhero/taskhero/internal/domain"
	"github.com/taskhero/taskhero/internal/infra/metrics"
)

// ─── Catalog & Reference Data ───────────────────────────────────────────────

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": s.agg.Evaluator().Catalog().Definitions(),
	})
}

func (s *Server) handleTitles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"titles": progression.AllTitles(),
	})
}

func (s *Server) handleStreakMilestones(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"milestones": progression.StreakMilestones(),
	})
}

// ─── Hero CRUD ──────────────────────────────────────────────────────────────

type createHeroRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateHero(w http.ResponseWriter, r *http.Request) {
	var req createHeroRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	hero, err := s.db.CreateHero(req.Name, s.now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, hero)
}

func (s *Server) handleListHeroes(w http.ResponseWriter, r *http.Request) {
	heroes, err := s.db.ListHeroes()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"heroes": heroes,
	})
}

func (s *Server) handleGetHero(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, hero)
}

func (s *Server) handleDeleteHero(w http.ResponseWriter, r *http.Request) {
	if err := s.db.DeleteHero(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Hero Views ─────────────────────────────────────────────────────────────

func (s *Server) handleHeroProgress(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	next, hasNext := progression.NextTitle(hero.Level)
	resp := map[string]interface{}{
		"level":    hero.Level,
		"xp":       hero.XP,
		"gold":     hero.Gold,
		"progress": progression.ProgressForXP(hero.XP),
		"bonuses":  hero.Bonuses,
		"title":    progression.TitleForLevel(hero.Level),
	}
	if hasNext {
		resp["next_title"] = next
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHeroAchievements(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	type achievementView struct {
		domain.AchievementDefinition
		Unlocked bool                       `json:"unlocked"`
		Progress domain.AchievementProgress `json:"progress"`
	}

	eval := s.agg.Evaluator()
	defs := eval.Catalog().Definitions()
	out := make([]achievementView, 0, len(defs))
	for _, def := range defs {
		progress, err := eval.ProgressFor(def.ID, hero)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		out = append(out, achievementView{
			AchievementDefinition: def,
			Unlocked:              hero.HasAchievement(def.ID),
			Progress:              progress,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": out,
		"unlocked":     len(hero.Achievements),
		"total":        len(defs),
	})
}

func (s *Server) handleHeroStreaks(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	now := s.now()
	streaks := make(map[string]progression.StreakStatus)
	for kind, st := range hero.Streaks {
		streaks[string(kind)] = progression.StatusOf(st, now)
	}

	resp := map[string]interface{}{
		"streaks": streaks,
	}
	daily := hero.Streak(domain.StreakDailyMissions)
	if milestone, ok := progression.NextStreakMilestone(daily.Current); ok {
		resp["next_milestone"] = milestone
	}
	writeJSON(w, http.StatusOK, resp)
}

// ─── Progression Events ─────────────────────────────────────────────────────

type missionCompletedRequest struct {
	XP          int64      `json:"xp"`
	Gold        int64      `json:"gold"`
	Difficulty  string     `json:"difficulty"`
	Type        string     `json:"type"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (s *Server) handleMissionCompleted(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	var req missionCompletedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	meta := domain.MissionMeta{
		Difficulty:  domain.Difficulty(req.Difficulty),
		Type:        domain.MissionType(req.Type),
		CompletedAt: s.now(),
	}
	if req.CompletedAt != nil {
		meta.CompletedAt = *req.CompletedAt
	}

	// Omitted reward fields fall back to the base reward table.
	xp, gold := req.XP, req.Gold
	if xp == 0 && gold == 0 {
		base := progression.AdjustedReward(progression.MissionReward(meta), hero.Level)
		xp, gold = base.XP, base.Gold
	}

	result, err := s.agg.ApplyMissionCompletion(hero, xp, gold, meta)
	if err != nil {
		metrics.TransitionErrors.WithLabelValues(transitionErrorReason(err)).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.SaveHero(hero); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.recordTransitionMetrics(string(meta.Difficulty), xp, gold, result)
	writeJSON(w, http.StatusOK, transitionResponse(hero, result))
}

type xpGainRequest struct {
	Amount int64 `json:"amount"`
}

func (s *Server) handleXPGain(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	var req xpGainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.agg.ApplyXPGain(hero, req.Amount, s.now())
	if err != nil {
		metrics.TransitionErrors.WithLabelValues(transitionErrorReason(err)).Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.SaveHero(hero); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	metrics.XPEarned.Add(float64(req.Amount))
	writeJSON(w, http.StatusOK, transitionResponse(hero, result))
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	hero, ok := s.loadHero(w, r)
	if !ok {
		return
	}

	update, err := s.agg.RecordLogin(hero, s.now())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.db.SaveHero(hero); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, update)
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func (s *Server) loadHero(w http.ResponseWriter, r *http.Request) (*domain.HeroState, bool) {
	hero, err := s.db.GetHero(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	// Bonuses are derived from level, not stored.
	hero.Bonuses = progression.BonusesForLevel(hero.Level)
	return hero, true
}

func transitionResponse(hero *domain.HeroState, result domain.TransitionResult) map[string]interface{} {
	return map[string]interface{}{
		"hero":   hero,
		"result": result,
	}
}

func (s *Server) recordTransitionMetrics(difficulty string, xp, gold int64, result domain.TransitionResult) {
	metrics.MissionsCompleted.WithLabelValues(difficulty).Inc()
	metrics.XPEarned.Add(float64(xp + result.TotalReward.XP))
	metrics.GoldEarned.Add(float64(gold + result.TotalReward.Gold))
	if result.LevelUp.LeveledUp {
		metrics.LevelUps.Add(float64(result.LevelUp.LevelsGained))
	}
	for _, def := range result.Unlocked {
		metrics.AchievementsUnlocked.WithLabelValues(string(def.Category)).Inc()
	}
	if result.Streak.IsNewRecord {
		metrics.StreakRecords.WithLabelValues(string(domain.StreakDailyMissions)).Inc()
	}
}

func transitionErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNegativeXP):
		return "negative_xp"
	case errors.Is(err, domain.ErrNegativeGold):
		return "negative_gold"
	case errors.Is(err, domain.ErrUnknownDifficulty):
		return "unknown_difficulty"
	case errors.Is(err, domain.ErrNilHero):
		return "nil_hero"
	default:
		return "other"
	}
}
