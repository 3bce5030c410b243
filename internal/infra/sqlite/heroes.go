package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/taskhero/taskhero/internal/domain"
)

// ─── Hero State ─────────────────────────────────────────────────────────────

// CreateHero inserts a new hero with a generated id and fresh state.
func (d *DB) CreateHero(name string, now time.Time) (*domain.HeroState, error) {
	hero := domain.NewHeroState(uuid.NewString(), name, now)
	_, err := d.db.Exec(
		`INSERT INTO heroes (id, name, level, xp, gold, created_at, last_active)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		hero.ID, hero.Name, hero.Level, hero.XP, hero.Gold,
		hero.CreatedAt.Unix(), hero.LastActive.Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert hero: %w", err)
	}
	return hero, nil
}

// GetHero loads a hero with stats, achievements, and streaks.
// Returns domain.ErrHeroNotFound for an unknown id.
func (d *DB) GetHero(id string) (*domain.HeroState, error) {
	hero := &domain.HeroState{
		Streaks: make(map[domain.StreakKind]*domain.StreakState),
		Stats:   make(domain.Stats),
	}

	var createdAt, lastActive int64
	err := d.db.QueryRow(
		`SELECT id, name, level, xp, gold, created_at, last_active FROM heroes WHERE id = ?`, id,
	).Scan(&hero.ID, &hero.Name, &hero.Level, &hero.XP, &hero.Gold, &createdAt, &lastActive)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %q", domain.ErrHeroNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("load hero: %w", err)
	}
	hero.CreatedAt = time.Unix(createdAt, 0)
	hero.LastActive = time.Unix(lastActive, 0)

	if err := d.loadStats(hero); err != nil {
		return nil, err
	}
	if err := d.loadAchievements(hero); err != nil {
		return nil, err
	}
	if err := d.loadStreaks(hero); err != nil {
		return nil, err
	}
	return hero, nil
}

// SaveHero writes the full hero state in one transaction. Stats,
// achievements, and streaks are replaced wholesale; the state in memory
// is authoritative after a progression transition.
func (d *DB) SaveHero(hero *domain.HeroState) error {
	if hero == nil {
		return domain.ErrNilHero
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`UPDATE heroes SET name=?, level=?, xp=?, gold=?, last_active=? WHERE id=?`,
		hero.Name, hero.Level, hero.XP, hero.Gold, hero.LastActive.Unix(), hero.ID,
	)
	if err != nil {
		return fmt.Errorf("update hero: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", domain.ErrHeroNotFound, hero.ID)
	}

	if _, err := tx.Exec(`DELETE FROM hero_stats WHERE hero_id=?`, hero.ID); err != nil {
		return fmt.Errorf("clear stats: %w", err)
	}
	for key, value := range hero.Stats {
		if _, err := tx.Exec(
			`INSERT INTO hero_stats (hero_id, key, value) VALUES (?, ?, ?)`,
			hero.ID, key, value,
		); err != nil {
			return fmt.Errorf("insert stat %q: %w", key, err)
		}
	}

	// Position preserves unlock order across reloads.
	if _, err := tx.Exec(`DELETE FROM hero_achievements WHERE hero_id=?`, hero.ID); err != nil {
		return fmt.Errorf("clear achievements: %w", err)
	}
	for i, id := range hero.Achievements {
		if _, err := tx.Exec(
			`INSERT INTO hero_achievements (hero_id, achievement_id, unlocked_at, position)
			 VALUES (?, ?, ?, ?)`,
			hero.ID, id, hero.LastActive.Unix(), i,
		); err != nil {
			return fmt.Errorf("insert achievement %q: %w", id, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM hero_streaks WHERE hero_id=?`, hero.ID); err != nil {
		return fmt.Errorf("clear streaks: %w", err)
	}
	for kind, st := range hero.Streaks {
		history, err := json.Marshal(st.History)
		if err != nil {
			return fmt.Errorf("encode streak history: %w", err)
		}
		var lastActive int64
		if !st.LastActive.IsZero() {
			lastActive = st.LastActive.Unix()
		}
		if _, err := tx.Exec(
			`INSERT INTO hero_streaks (hero_id, kind, current, longest, last_active, history)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			hero.ID, string(kind), st.Current, st.Longest, lastActive, string(history),
		); err != nil {
			return fmt.Errorf("insert streak %q: %w", kind, err)
		}
	}

	return tx.Commit()
}

// ListHeroes returns id, name, and level for all heroes, newest first.
func (d *DB) ListHeroes() ([]domain.HeroSummary, error) {
	rows, err := d.db.Query(
		`SELECT id, name, level, xp, gold FROM heroes ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var heroes []domain.HeroSummary
	for rows.Next() {
		var h domain.HeroSummary
		if err := rows.Scan(&h.ID, &h.Name, &h.Level, &h.XP, &h.Gold); err != nil {
			return nil, err
		}
		heroes = append(heroes, h)
	}
	return heroes, rows.Err()
}

// DeleteHero removes a hero and all dependent rows.
func (d *DB) DeleteHero(id string) error {
	res, err := d.db.Exec(`DELETE FROM heroes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", domain.ErrHeroNotFound, id)
	}
	return nil
}

// ListUnlockedAchievements returns a hero's unlocked achievements in
// unlock order.
func (d *DB) ListUnlockedAchievements(heroID string) ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(
		`SELECT achievement_id, unlocked_at FROM hero_achievements
		 WHERE hero_id=? ORDER BY position`,
		heroID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.UnlockedAchievement
	for rows.Next() {
		var a domain.UnlockedAchievement
		var unlockedAt int64
		if err := rows.Scan(&a.ID, &unlockedAt); err != nil {
			return nil, err
		}
		a.UnlockedAt = time.Unix(unlockedAt, 0)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// HeroCount returns the number of stored heroes.
func (d *DB) HeroCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM heroes`).Scan(&count)
	return count, err
}

func (d *DB) loadStats(hero *domain.HeroState) error {
	rows, err := d.db.Query(`SELECT key, value FROM hero_stats WHERE hero_id=?`, hero.ID)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var value int64
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		hero.Stats[key] = value
	}
	return rows.Err()
}

func (d *DB) loadAchievements(hero *domain.HeroState) error {
	rows, err := d.db.Query(
		`SELECT achievement_id FROM hero_achievements WHERE hero_id=? ORDER BY position`,
		hero.ID,
	)
	if err != nil {
		return fmt.Errorf("load achievements: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		hero.Achievements = append(hero.Achievements, id)
	}
	return rows.Err()
}

func (d *DB) loadStreaks(hero *domain.HeroState) error {
	rows, err := d.db.Query(
		`SELECT kind, current, longest, last_active, history FROM hero_streaks WHERE hero_id=?`,
		hero.ID,
	)
	if err != nil {
		return fmt.Errorf("load streaks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, history string
		var lastActive int64
		st := &domain.StreakState{}
		if err := rows.Scan(&kind, &st.Current, &st.Longest, &lastActive, &history); err != nil {
			return err
		}
		if lastActive != 0 {
			st.LastActive = time.Unix(lastActive, 0)
		}
		if err := json.Unmarshal([]byte(history), &st.History); err != nil {
			return fmt.Errorf("decode streak history: %w", err)
		}
		hero.Streaks[domain.StreakKind(kind)] = st
	}
	return rows.Err()
}
