package domain

import (
	"fmt"
	"time"
)

const (
	GreetingDateLayout = "Monday, January 2"
	CalendarDateLayout = "January 2"
)

type HealthGoalsCard struct {
	Subtitle   string `json:"subtitle"`
	Completed  int    `json:"completed"`
	Total      int    `json:"total"`
	BottomInfo string `json:"bottom_info,omitempty"`
}

type NutritionCard struct {
	Calories    float64 `json:"calories"`
	CalorieGoal float64 `json:"calorie_goal"`
	Progress    float64 `json:"progress"`
	BottomInfo  string  `json:"bottom_info"`
}

type CalendarCard struct {
	Subtitle   string `json:"subtitle"`
	StreakDays int    `json:"streak_days"`
	Date       string `json:"date"`
}

type LifestyleCard struct {
	Subtitle     string `json:"subtitle"`
	ArticleCount int    `json:"article_count"`
}

type DashboardSummary struct {
	Greeting    string          `json:"greeting"`
	Date        string          `json:"date"`
	HealthGoals HealthGoalsCard `json:"health_goals"`
	Nutrition   NutritionCard   `json:"nutrition"`
	Calendar    CalendarCard    `json:"calendar"`
	Lifestyle   LifestyleCard   `json:"lifestyle"`
}

func NewHealthGoalsCard(p GoalProgress) HealthGoalsCard {
	card := HealthGoalsCard{
		Subtitle:  fmt.Sprintf("%d of %d completed", p.Completed, p.Total),
		Completed: p.Completed,
		Total:     p.Total,
	}
	if p.NextTask != "" {
		card.BottomInfo = "Next Healthy Task: " + p.NextTask
	}
	return card
}

func NewCalendarCard(streak int, now time.Time) CalendarCard {
	return CalendarCard{
		Subtitle:   fmt.Sprintf("Healthy streak: %d days", streak),
		StreakDays: streak,
		Date:       now.Format(CalendarDateLayout),
	}
}
