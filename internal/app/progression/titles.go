package progression

import "github.com/taskhero/taskhero/internal/domain"

// titles is the developer title ladder, ordered by ascending level
// threshold. A hero holds the highest title whose level they have
// reached.
var titles = []domain.Title{
	{Level: 1, Name: "Novice Developer", Icon: "💻", Description: "Starting the development journey"},
	{Level: 5, Name: "Junior Developer", Icon: "⚡", Description: "Gaining experience and confidence"},
	{Level: 15, Name: "Mid-level Developer", Icon: "🚀", Description: "Mastering the core technologies"},
	{Level: 30, Name: "Senior Developer", Icon: "💎", Description: "Leading projects and mentoring others"},
	{Level: 50, Name: "Master Developer", Icon: "🏆", Description: "Recognized specialist in the field"},
	{Level: 75, Name: "Software Architect", Icon: "🔥", Description: "Designing complex systems"},
	{Level: 100, Name: "Supreme Tech Lead", Icon: "⭐", Description: "Exceptional technical leadership"},
}

// TitleForLevel returns the title held at a level.
func TitleForLevel(level int) domain.Title {
	current := titles[0]
	for _, t := range titles {
		if level >= t.Level {
			current = t
		}
	}
	return current
}

// NextTitle returns the next title above a level, or false if the
// ladder is exhausted.
func NextTitle(level int) (domain.Title, bool) {
	for _, t := range titles {
		if level < t.Level {
			return t, true
		}
	}
	return domain.Title{}, false
}

// AllTitles returns the full ladder.
func AllTitles() []domain.Title {
	out := make([]domain.Title, len(titles))
	copy(out, titles)
	return out
}

// CheckTitleChange reports whether moving between two levels crossed a
// title threshold.
func CheckTitleChange(oldLevel, newLevel int) domain.TitleChange {
	oldTitle := TitleForLevel(oldLevel)
	newTitle := TitleForLevel(newLevel)
	return domain.TitleChange{
		Changed: oldTitle.Name != newTitle.Name,
		Old:     oldTitle,
		New:     newTitle,
	}
}
