package domain

import (
	"errors"
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrNutritionNameEmpty    = errors.New("nutrition goal name cannot be empty")
	ErrNutritionNameTooLong  = errors.New("nutrition goal name is too long (max 100 chars)")
	ErrInvalidNutritionValue = errors.New("current cannot be negative and target must be positive")
	ErrInvalidColor          = errors.New("invalid color format (must be #RRGGBB)")
	ErrNutritionGoalNotFound = errors.New("nutrition goal not found")
)

var colorRegex = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

const (
	DefaultNutritionColor = "#9E9E9E"
	MaxNutritionNameLen   = 100
	MaxRings              = 4
	CaloriesGoalName      = "Calories"
)

type NutritionGoal struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Current   float64   `json:"current"`
	Target    float64   `json:"target"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
}

type NutritionRing struct {
	GoalID   string  `json:"goal_id"`
	Name     string  `json:"name"`
	Color    string  `json:"color"`
	Progress float64 `json:"progress"`
}

type NutritionProgress struct {
	GoalID   string  `json:"goal_id"`
	Name     string  `json:"name"`
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
	Percent  int     `json:"percent"`
}

type NutritionSummary struct {
	Percentage      float64             `json:"percentage"`
	PercentageLabel int                 `json:"percentage_label"`
	Rings           []NutritionRing     `json:"rings"`
	Goals           []NutritionProgress `json:"goals"`
}

func DefaultNutritionGoals() []*NutritionGoal {
	seed := []struct {
		name    string
		current float64
		target  float64
		color   string
	}{
		{CaloriesGoalName, 1500, 2000, "#00C6AE"},
		{"Carbs", 120, 300, "#F9A825"},
		{"Protein", 80, 100, "#1976D2"},
		{"Fiber", 10, 30, "#8BC34A"},
	}

	goals := make([]*NutritionGoal, 0, len(seed))
	for i, s := range seed {
		g, _ := NewNutritionGoal(s.name, s.current, s.target, s.color)
		g.SortOrder = i
		goals = append(goals, g)
	}
	return goals
}

func NewNutritionGoal(name string, current, target float64, color string) (*NutritionGoal, error) {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return nil, ErrNutritionNameEmpty
	}
	if utf8.RuneCountInString(clean) > MaxNutritionNameLen {
		return nil, ErrNutritionNameTooLong
	}

	if math.IsNaN(current) || math.IsNaN(target) || current < 0 || target <= 0 {
		return nil, ErrInvalidNutritionValue
	}

	if color == "" {
		color = DefaultNutritionColor
	} else if !colorRegex.MatchString(color) {
		return nil, ErrInvalidColor
	}

	return &NutritionGoal{
		ID:        uuid.NewString(),
		Name:      clean,
		Current:   current,
		Target:    target,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Ratio is current over target, with targets below 1 treated as 1. Not clamped.
func (g *NutritionGoal) Ratio() float64 {
	return g.Current / math.Max(g.Target, 1)
}

// Progress is Ratio capped at 1, the fill of a bar or ring.
func (g *NutritionGoal) Progress() float64 {
	return math.Min(g.Ratio(), 1)
}

// SummarizeNutrition builds the ring view from the first MaxRings goals. The
// headline percentage averages the uncapped ratios, so it can exceed 100.
func SummarizeNutrition(goals []*NutritionGoal) NutritionSummary {
	summary := NutritionSummary{
		Rings: make([]NutritionRing, 0, MaxRings),
		Goals: make([]NutritionProgress, 0, len(goals)),
	}

	ringGoals := goals
	if len(ringGoals) > MaxRings {
		ringGoals = ringGoals[:MaxRings]
	}

	total := 0.0
	for _, g := range ringGoals {
		total += g.Ratio()
		summary.Rings = append(summary.Rings, NutritionRing{
			GoalID:   g.ID,
			Name:     g.Name,
			Color:    g.Color,
			Progress: g.Progress(),
		})
	}
	summary.Percentage = total / math.Max(float64(len(ringGoals)), 1)
	summary.PercentageLabel = int(summary.Percentage * 100)

	for _, g := range goals {
		summary.Goals = append(summary.Goals, NutritionProgress{
			GoalID:   g.ID,
			Name:     g.Name,
			Current:  g.Current,
			Target:   g.Target,
			Progress: g.Progress(),
			Percent:  int(math.Round(g.Progress() * 100)),
		})
	}

	return summary
}

// FindCalories returns the goal named Calories (case-insensitive), if any.
func FindCalories(goals []*NutritionGoal) *NutritionGoal {
	for _, g := range goals {
		if strings.EqualFold(g.Name, CaloriesGoalName) {
			return g
		}
	}
	return nil
}
