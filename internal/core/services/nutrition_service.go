package services

import (
	"context"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type NutritionService struct {
	repo domain.NutritionGoalRepository
}

func NewNutritionService(repo domain.NutritionGoalRepository) *NutritionService {
	return &NutritionService{
		repo: repo,
	}
}

type AddNutritionGoalInput struct {
	Name    string
	Current float64
	Target  float64
	Color   string
}

type AllergyCheckInput struct {
	Foods     []string
	Allergies []domain.Allergy
}

type AllergyCheckResult struct {
	Alerts  []domain.FoodAlert    `json:"alerts"`
	Summary domain.AllergySummary `json:"summary"`
}

func (s *NutritionService) List(ctx context.Context) ([]*domain.NutritionGoal, error) {
	return s.repo.List(ctx)
}

func (s *NutritionService) Add(ctx context.Context, input AddNutritionGoalInput) (*domain.NutritionGoal, error) {
	goal, err := domain.NewNutritionGoal(input.Name, input.Current, input.Target, input.Color)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *NutritionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *NutritionService) Summary(ctx context.Context) (domain.NutritionSummary, error) {
	goals, err := s.repo.List(ctx)
	if err != nil {
		return domain.NutritionSummary{}, err
	}
	return domain.SummarizeNutrition(goals), nil
}

// CheckAllergies rates every food against the allergies in the order given.
func (s *NutritionService) CheckAllergies(input AllergyCheckInput) (*AllergyCheckResult, error) {
	for _, a := range input.Allergies {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}

	return &AllergyCheckResult{
		Alerts:  domain.CheckFoods(input.Foods, input.Allergies),
		Summary: domain.SummarizeAllergies(input.Allergies),
	}, nil
}
