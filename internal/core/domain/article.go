package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Article struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Icon     string `json:"icon"`
}

func DefaultArticles() []Article {
	seed := [][3]string{
		{"10-Minute Morning Yoga", "Start your day with energy and focus.", "figure.yoga"},
		{"Healthy Meal Prep", "Easy recipes for a balanced diet.", "leaf"},
		{"Sleep Hygiene Tips", "Improve your rest with science-backed advice.", "bed.double.fill"},
		{"Mindful Breathing", "Reduce stress in 5 minutes.", "wind"},
		{"Walking for Wellness", "How daily walks boost your health.", "figure.walk"},
		{"Hydration Hacks", "Stay refreshed all day.", "drop.fill"},
	}

	articles := make([]Article, 0, len(seed))
	for _, s := range seed {
		articles = append(articles, Article{
			ID:       uuid.NewString(),
			Title:    s[0],
			Subtitle: s[1],
			Icon:     s[2],
		})
	}
	return articles
}

func (a Article) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Subtitle), q)
}

// FilterArticles keeps the articles whose title or subtitle contains query,
// ignoring case. An empty query keeps everything.
func FilterArticles(articles []Article, query string) []Article {
	if query == "" {
		return articles
	}

	filtered := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.Matches(query) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
