package progression_test

import (
	"testing"

	"github.com/taskhero/taskhero/internal/app/progression"
)

// ═══════════════════════════════════════════════════════════════════════════
// Developer Title Tests
// ═══════════════════════════════════════════════════════════════════════════

func TestTitleForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 1},
		{4, 1},
		{5, 5},
		{14, 5},
		{15, 15},
		{49, 30},
		{100, 100},
		{0, 1}, // below the ladder still yields the base title
	}
	for _, tt := range tests {
		if got := progression.TitleForLevel(tt.level); got.Level != tt.want {
			t.Errorf("TitleForLevel(%d) = level-%d title, want level-%d", tt.level, got.Level, tt.want)
		}
	}
}

func TestNextTitle(t *testing.T) {
	next, ok := progression.NextTitle(1)
	if !ok || next.Level != 5 {
		t.Errorf("NextTitle(1) = %+v, want the level-5 title", next)
	}
	if _, ok := progression.NextTitle(100); ok {
		t.Error("no title remains above 100")
	}
}

func TestCheckTitleChange(t *testing.T) {
	ch := progression.CheckTitleChange(4, 5)
	if !ch.Changed || ch.New.Level != 5 {
		t.Errorf("4 -> 5 change = %+v, want promotion", ch)
	}

	ch = progression.CheckTitleChange(5, 14)
	if ch.Changed {
		t.Errorf("5 -> 14 change = %+v, want no promotion", ch)
	}
}

func TestAllTitles_Ordered(t *testing.T) {
	ladder := progression.AllTitles()
	if len(ladder) != 7 {
		t.Fatalf("ladder length = %d, want 7", len(ladder))
	}
	for i := 1; i < len(ladder); i++ {
		if ladder[i].Level <= ladder[i-1].Level {
			t.Errorf("ladder not ascending at index %d", i)
		}
	}
}
