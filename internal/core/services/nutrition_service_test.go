package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthadvisor/dashboard-engine/internal/adapters/repository"
	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

func TestNutritionService_Summary(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNutritionService(repository.NewSeededNutritionGoalRepository())

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	// (0.75 + 0.4 + 0.8 + 1/3) / 4
	assert.InDelta(t, 0.5708, summary.Percentage, 0.001)
	assert.Equal(t, 57, summary.PercentageLabel)
	assert.Len(t, summary.Rings, 4)
	assert.Equal(t, "Calories", summary.Rings[0].Name)
}

func TestNutritionService_AddAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := services.NewNutritionService(repository.NewSeededNutritionGoalRepository())

	t.Run("Fifth goal is listed but not ringed", func(t *testing.T) {
		g, err := svc.Add(ctx, services.AddNutritionGoalInput{Name: "Water", Current: 3, Target: 2})
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultNutritionColor, g.Color)

		summary, err := svc.Summary(ctx)
		require.NoError(t, err)
		assert.Len(t, summary.Rings, 4)
		require.Len(t, summary.Goals, 5)
		assert.Equal(t, 1.0, summary.Goals[4].Progress)
		assert.Equal(t, 100, summary.Goals[4].Percent)
	})

	t.Run("Validation", func(t *testing.T) {
		_, err := svc.Add(ctx, services.AddNutritionGoalInput{Name: "", Target: 1})
		assert.ErrorIs(t, err, domain.ErrNutritionNameEmpty)

		_, err = svc.Add(ctx, services.AddNutritionGoalInput{Name: "Iron", Current: -1, Target: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidNutritionValue)

		_, err = svc.Add(ctx, services.AddNutritionGoalInput{Name: "Iron", Target: 1, Color: "red"})
		assert.ErrorIs(t, err, domain.ErrInvalidColor)
	})

	t.Run("Delete", func(t *testing.T) {
		goals, err := svc.List(ctx)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, goals[0].ID))
		assert.ErrorIs(t, svc.Delete(ctx, goals[0].ID), domain.ErrNutritionGoalNotFound)
	})
}

func TestNutritionService_CheckAllergies(t *testing.T) {
	svc := services.NewNutritionService(repository.NewInMemoryNutritionGoalRepository())

	t.Run("Alerts per food", func(t *testing.T) {
		res, err := svc.CheckAllergies(services.AllergyCheckInput{
			Foods: []string{"Seafood paella", "Peanut butter toast", "Green salad"},
			Allergies: []domain.Allergy{
				{Name: "Shellfish", Severity: "severe"},
				{Name: "Peanut", Severity: "moderate"},
			},
		})
		require.NoError(t, err)
		require.Len(t, res.Alerts, 3)

		assert.Equal(t, domain.AlertSevere, res.Alerts[0].Alert)
		assert.Contains(t, res.Alerts[0].Notes, "CONTAINS SHELLFISH")
		assert.Equal(t, domain.AlertModerate, res.Alerts[1].Alert)
		assert.Empty(t, res.Alerts[1].Notes)
		assert.Equal(t, domain.AlertNone, res.Alerts[2].Alert)

		assert.Equal(t, []string{"Shellfish"}, res.Summary.SevereAllergens)
		assert.Equal(t, []string{"Peanut"}, res.Summary.ModerateAllergens)
	})

	t.Run("Invalid severity", func(t *testing.T) {
		_, err := svc.CheckAllergies(services.AllergyCheckInput{
			Foods:     []string{"Bread"},
			Allergies: []domain.Allergy{{Name: "Gluten", Severity: "deadly"}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidSeverity)
	})
}
