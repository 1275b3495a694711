package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

var (
	_ domain.HealthGoalRepository    = (*InMemoryHealthGoalRepository)(nil)
	_ domain.NutritionGoalRepository = (*InMemoryNutritionGoalRepository)(nil)
	_ domain.ArticleRepository       = (*InMemoryArticleRepository)(nil)
	_ domain.SnapshotStore           = (*InMemorySnapshotStore)(nil)
	_ domain.DietPlanRepository      = (*InMemoryDietPlanRepository)(nil)
)

type InMemoryHealthGoalRepository struct {
	store     map[string]*domain.HealthGoal
	nextOrder int

	mu sync.RWMutex
}

func NewInMemoryHealthGoalRepository() *InMemoryHealthGoalRepository {
	return &InMemoryHealthGoalRepository{
		store: make(map[string]*domain.HealthGoal),
	}
}

// NewSeededHealthGoalRepository starts with the app's default goals.
func NewSeededHealthGoalRepository() *InMemoryHealthGoalRepository {
	r := NewInMemoryHealthGoalRepository()
	for _, title := range domain.DefaultHealthGoals {
		g, _ := domain.NewHealthGoal(title)
		_ = r.Create(context.Background(), g)
	}
	return r
}

func (r *InMemoryHealthGoalRepository) Create(ctx context.Context, goal *domain.HealthGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.SortOrder = r.nextOrder
	r.nextOrder++

	clone := *goal
	r.store[goal.ID] = &clone
	return nil
}

func (r *InMemoryHealthGoalRepository) GetByID(ctx context.Context, id string) (*domain.HealthGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goal, ok := r.store[id]
	if !ok {
		return nil, domain.ErrGoalNotFound
	}
	clone := *goal
	return &clone, nil
}

func (r *InMemoryHealthGoalRepository) List(ctx context.Context) ([]*domain.HealthGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*domain.HealthGoal, 0, len(r.store))
	for _, g := range r.store {
		clone := *g
		goals = append(goals, &clone)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].SortOrder < goals[j].SortOrder
	})

	return goals, nil
}

func (r *InMemoryHealthGoalRepository) Update(ctx context.Context, goal *domain.HealthGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[goal.ID]; !ok {
		return domain.ErrGoalNotFound
	}

	clone := *goal
	r.store[goal.ID] = &clone
	return nil
}

func (r *InMemoryHealthGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrGoalNotFound
	}

	delete(r.store, id)
	return nil
}

type InMemoryNutritionGoalRepository struct {
	store     map[string]*domain.NutritionGoal
	nextOrder int

	mu sync.RWMutex
}

func NewInMemoryNutritionGoalRepository() *InMemoryNutritionGoalRepository {
	return &InMemoryNutritionGoalRepository{
		store: make(map[string]*domain.NutritionGoal),
	}
}

func NewSeededNutritionGoalRepository() *InMemoryNutritionGoalRepository {
	r := NewInMemoryNutritionGoalRepository()
	for _, g := range domain.DefaultNutritionGoals() {
		_ = r.Create(context.Background(), g)
	}
	return r
}

func (r *InMemoryNutritionGoalRepository) Create(ctx context.Context, goal *domain.NutritionGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	goal.SortOrder = r.nextOrder
	r.nextOrder++

	clone := *goal
	r.store[goal.ID] = &clone
	return nil
}

func (r *InMemoryNutritionGoalRepository) List(ctx context.Context) ([]*domain.NutritionGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goals := make([]*domain.NutritionGoal, 0, len(r.store))
	for _, g := range r.store {
		clone := *g
		goals = append(goals, &clone)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].SortOrder < goals[j].SortOrder
	})

	return goals, nil
}

func (r *InMemoryNutritionGoalRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return domain.ErrNutritionGoalNotFound
	}

	delete(r.store, id)
	return nil
}

// InMemoryArticleRepository is a fixed catalog.
type InMemoryArticleRepository struct {
	articles []domain.Article
}

func NewInMemoryArticleRepository(articles []domain.Article) *InMemoryArticleRepository {
	return &InMemoryArticleRepository{articles: articles}
}

func (r *InMemoryArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	out := make([]domain.Article, len(r.articles))
	copy(out, r.articles)
	return out, nil
}

// InMemoryDietPlanRepository serves one fixed plan.
type InMemoryDietPlanRepository struct {
	plan domain.DietPlan
}

func NewInMemoryDietPlanRepository(plan domain.DietPlan) *InMemoryDietPlanRepository {
	return &InMemoryDietPlanRepository{plan: plan}
}

func (r *InMemoryDietPlanRepository) Get(ctx context.Context) (domain.DietPlan, error) {
	return r.plan, nil
}

type InMemorySnapshotStore struct {
	latest *domain.StreakSnapshot

	mu sync.RWMutex
}

func NewInMemorySnapshotStore() *InMemorySnapshotStore {
	return &InMemorySnapshotStore{}
}

func (s *InMemorySnapshotStore) Save(ctx context.Context, snapshot domain.StreakSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest = &snapshot
	return nil
}

func (s *InMemorySnapshotStore) Latest(ctx context.Context) (domain.StreakSnapshot, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return domain.StreakSnapshot{}, false, nil
	}
	return *s.latest, true, nil
}
