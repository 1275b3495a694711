package domain

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrGoalTitleEmpty   = errors.New("goal title cannot be empty")
	ErrGoalTitleTooLong = errors.New("goal title is too long (max 100 chars)")
	ErrGoalNotFound     = errors.New("goal not found")
)

const MaxGoalTitleLen = 100

var DefaultHealthGoals = []string{
	"Drink 2L water",
	"Walk 10,000 steps",
	"Eat 5 servings of vegetables",
}

type HealthGoal struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Done      bool      `json:"done"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GoalProgress struct {
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	NextTask  string `json:"next_task,omitempty"`
}

func validateTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrGoalTitleEmpty
	}
	if utf8.RuneCountInString(trimmed) > MaxGoalTitleLen {
		return "", ErrGoalTitleTooLong
	}
	return trimmed, nil
}

func NewHealthGoal(title string) (*HealthGoal, error) {
	clean, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &HealthGoal{
		ID:        uuid.NewString(),
		Title:     clean,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (g *HealthGoal) SetDone(done bool) {
	if g.Done == done {
		return
	}
	g.Done = done
	g.UpdatedAt = time.Now().UTC()
}

// SummarizeGoals expects goals in display order; the next task is the first
// goal that is not done yet.
func SummarizeGoals(goals []*HealthGoal) GoalProgress {
	p := GoalProgress{Total: len(goals)}
	for _, g := range goals {
		if g.Done {
			p.Completed++
			continue
		}
		if p.NextTask == "" {
			p.NextTask = g.Title
		}
	}
	return p
}
