package services

import (
	"context"
	"fmt"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

// DietPlanService serves the weekly plan checked against an allergy profile.
// Callers may pass their own allergies; nil means the service's profile.
type DietPlanService struct {
	repo    domain.DietPlanRepository
	profile []domain.Allergy
}

func NewDietPlanService(repo domain.DietPlanRepository, profile []domain.Allergy) *DietPlanService {
	return &DietPlanService{
		repo:    repo,
		profile: profile,
	}
}

const PlanAllergyWarning = "SEVERE ALLERGY ALERT: This plan contains meals that may trigger severe allergic reactions."

type DietPlanAllergyInfo struct {
	AllergyWarning string                        `json:"allergy_warning"`
	FlaggedMeals   int                           `json:"flagged_meals"`
	AllergyAlerts  *domain.DietPlanAllergyAlerts `json:"allergy_alerts"`
}

func (s *DietPlanService) allergies(override []domain.Allergy) ([]domain.Allergy, error) {
	if override == nil {
		return s.profile, nil
	}
	for _, a := range override {
		if err := a.Validate(); err != nil {
			return nil, err
		}
	}
	return override, nil
}

func (s *DietPlanService) Plan(ctx context.Context, allergies []domain.Allergy) (*domain.DietPlan, error) {
	checked, err := s.allergies(allergies)
	if err != nil {
		return nil, err
	}

	plan, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load diet plan: %w", err)
	}

	annotated := domain.AnnotateDietPlan(plan, checked)
	return &annotated, nil
}

func (s *DietPlanService) Day(ctx context.Context, day int, allergies []domain.Allergy) (*domain.DietDay, error) {
	plan, err := s.Plan(ctx, allergies)
	if err != nil {
		return nil, err
	}
	return plan.Day(day)
}

func (s *DietPlanService) Meal(ctx context.Context, day int, meal string, allergies []domain.Allergy) (*domain.Meal, error) {
	d, err := s.Day(ctx, day, allergies)
	if err != nil {
		return nil, err
	}
	return d.Meal(meal)
}

// AllergyInfo is the plan-level allergy section. The warning is set when any
// meal of the week holds a severe item.
func (s *DietPlanService) AllergyInfo(ctx context.Context, allergies []domain.Allergy) (*DietPlanAllergyInfo, error) {
	plan, err := s.Plan(ctx, allergies)
	if err != nil {
		return nil, err
	}

	info := &DietPlanAllergyInfo{AllergyAlerts: plan.AllergyAlerts}
	for _, day := range plan.WeeklyPlan {
		for _, meal := range day.Meals {
			if meal.AllergyWarning != "" {
				info.FlaggedMeals++
			}
		}
	}
	if info.FlaggedMeals > 0 {
		info.AllergyWarning = PlanAllergyWarning
	}
	return info, nil
}
