package services

import (
	"context"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type GoalService struct {
	repo domain.HealthGoalRepository
}

func NewGoalService(repo domain.HealthGoalRepository) *GoalService {
	return &GoalService{
		repo: repo,
	}
}

func (s *GoalService) List(ctx context.Context) ([]*domain.HealthGoal, error) {
	return s.repo.List(ctx)
}

func (s *GoalService) Add(ctx context.Context, title string) (*domain.HealthGoal, error) {
	goal, err := domain.NewHealthGoal(title)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) SetDone(ctx context.Context, id string, done bool) (*domain.HealthGoal, error) {
	goal, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	goal.SetDone(done)

	if err := s.repo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *GoalService) Progress(ctx context.Context) (domain.GoalProgress, error) {
	goals, err := s.repo.List(ctx)
	if err != nil {
		return domain.GoalProgress{}, err
	}
	return domain.SummarizeGoals(goals), nil
}
