package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

const (
	DishOfTheDay      = "Your dish match today: Grilled Salmon Salad"
	LifestyleSubtitle = "Tips for a healthy life"
)

type StreakSource interface {
	GetStreak(ctx context.Context, reference time.Time) (domain.StreakSnapshot, error)
}

type DashboardService struct {
	streaks   StreakSource
	goals     *GoalService
	nutrition *NutritionService
	articles  *ArticleService
	log       *zap.SugaredLogger
}

func NewDashboardService(streaks StreakSource, goals *GoalService, nutrition *NutritionService, articles *ArticleService, log *zap.SugaredLogger) *DashboardService {
	return &DashboardService{
		streaks:   streaks,
		goals:     goals,
		nutrition: nutrition,
		articles:  articles,
		log:       log,
	}
}

// Summary builds the home screen cards for now. A failing collaborator only
// empties its own card; the streak falls back to 0.
func (s *DashboardService) Summary(ctx context.Context, now time.Time) *domain.DashboardSummary {
	summary := &domain.DashboardSummary{
		Greeting: "Happy " + now.Format(domain.GreetingDateLayout),
		Date:     now.Format(domain.DateLayout),
	}

	progress, err := s.goals.Progress(ctx)
	if err != nil {
		s.log.Warnw("Health goals unavailable", "error", err)
	}
	summary.HealthGoals = domain.NewHealthGoalsCard(progress)

	summary.Nutrition = domain.NutritionCard{BottomInfo: DishOfTheDay}
	if goals, err := s.nutrition.List(ctx); err != nil {
		s.log.Warnw("Nutrition goals unavailable", "error", err)
	} else if cal := domain.FindCalories(goals); cal != nil {
		summary.Nutrition.Calories = cal.Current
		summary.Nutrition.CalorieGoal = cal.Target
		summary.Nutrition.Progress = cal.Progress()
	}

	streak := 0
	if snap, err := s.streaks.GetStreak(ctx, now); err != nil {
		s.log.Warnw("Calendar source unavailable, showing zero streak", "error", err)
	} else {
		streak = snap.Current
	}
	summary.Calendar = domain.NewCalendarCard(streak, now)

	summary.Lifestyle = domain.LifestyleCard{Subtitle: LifestyleSubtitle}
	if articles, err := s.articles.Search(ctx, ""); err != nil {
		s.log.Warnw("Articles unavailable", "error", err)
	} else {
		summary.Lifestyle.ArticleCount = len(articles)
	}

	return summary
}
