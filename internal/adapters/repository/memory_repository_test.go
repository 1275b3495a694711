package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

func TestInMemoryHealthGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededHealthGoalRepository()

	t.Run("Seeded in display order", func(t *testing.T) {
		goals, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, goals, len(domain.DefaultHealthGoals))
		for i, g := range goals {
			assert.Equal(t, domain.DefaultHealthGoals[i], g.Title)
		}
	})

	t.Run("Create appends at the end", func(t *testing.T) {
		g, err := domain.NewHealthGoal("Stretch 10 minutes")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, g))

		goals, _ := repo.List(ctx)
		assert.Equal(t, "Stretch 10 minutes", goals[len(goals)-1].Title)
	})

	t.Run("Returned goals are copies", func(t *testing.T) {
		goals, _ := repo.List(ctx)
		goals[0].Title = "mutated"

		again, err := repo.GetByID(ctx, goals[0].ID)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again.Title)
	})

	t.Run("Update and Delete", func(t *testing.T) {
		goals, _ := repo.List(ctx)
		g := goals[1]
		g.SetDone(true)
		require.NoError(t, repo.Update(ctx, g))

		got, err := repo.GetByID(ctx, g.ID)
		require.NoError(t, err)
		assert.True(t, got.Done)

		require.NoError(t, repo.Delete(ctx, g.ID))
		_, err = repo.GetByID(ctx, g.ID)
		assert.ErrorIs(t, err, domain.ErrGoalNotFound)
	})

	t.Run("Missing ids", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrGoalNotFound)
		assert.ErrorIs(t, repo.Update(ctx, &domain.HealthGoal{ID: "nope"}), domain.ErrGoalNotFound)
	})
}

func TestInMemoryNutritionGoalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededNutritionGoalRepository()

	goals, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 4)
	assert.Equal(t, "Calories", goals[0].Name)
	assert.Equal(t, "Fiber", goals[3].Name)

	g, err := domain.NewNutritionGoal("Water", 1, 2, "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, g))

	goals, _ = repo.List(ctx)
	assert.Equal(t, "Water", goals[4].Name)

	require.NoError(t, repo.Delete(ctx, goals[0].ID))
	assert.ErrorIs(t, repo.Delete(ctx, goals[0].ID), domain.ErrNutritionGoalNotFound)

	goals, _ = repo.List(ctx)
	assert.Equal(t, "Carbs", goals[0].Name)
}

func TestInMemoryNutritionGoalRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryNutritionGoalRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, _ := domain.NewNutritionGoal("Item", 1, 1, "")
			_ = repo.Create(ctx, g)
		}()
	}
	wg.Wait()

	goals, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, goals, 50)
}

func TestInMemoryArticleRepository(t *testing.T) {
	repo := NewInMemoryArticleRepository(domain.DefaultArticles())

	articles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 6)

	articles[0].Title = "changed"
	again, _ := repo.List(context.Background())
	assert.Equal(t, "10-Minute Morning Yoga", again[0].Title)
}

func TestInMemorySnapshotStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemorySnapshotStore()

	_, ok, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	snap := domain.StreakSnapshot{ReferenceDate: "2024-03-05", Current: 5, Longest: 5, ComputedAt: time.Now().UTC()}
	require.NoError(t, store.Save(ctx, snap))

	got, ok, err := store.Latest(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, snap, got)
}

func TestInMemoryDietPlanRepository(t *testing.T) {
	repo := NewInMemoryDietPlanRepository(domain.SampleDietPlan())

	plan, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Len(t, plan.WeeklyPlan, 7)
	assert.Nil(t, plan.AllergyAlerts)
}
