package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

func TestDietPlan(t *testing.T) {
	router := setupRouter(t)

	t.Run("Full plan with profile alerts", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan", "")

		require.Equal(t, http.StatusOK, w.Code)
		plan := decode[domain.DietPlan](t, w)
		assert.Len(t, plan.WeeklyPlan, 7)
		require.NotNil(t, plan.AllergyAlerts)
		assert.Equal(t, []string{"Shellfish"}, plan.AllergyAlerts.SevereAllergens)
	})

	t.Run("Single day", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan/days/2", "")

		require.Equal(t, http.StatusOK, w.Code)
		day := decode[domain.DietDay](t, w)
		assert.Equal(t, 2, day.Day)
	})

	t.Run("Single meal", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan/days/2/meals/lunch", "")

		require.Equal(t, http.StatusOK, w.Code)
		meal := decode[domain.Meal](t, w)
		assert.Equal(t, "Seafood Paella", meal.Items[0].Food)
		assert.Equal(t, domain.AlertSevere, meal.Items[0].AllergyAlert)
		assert.Contains(t, meal.AllergyWarning, "SEVERE ALLERGY ALERT")
	})

	t.Run("Allergies from the query", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan/days/2/meals/lunch?allergy=Rice:moderate", "")

		require.Equal(t, http.StatusOK, w.Code)
		meal := decode[domain.Meal](t, w)
		assert.Equal(t, domain.AlertNone, meal.Items[0].AllergyAlert)
		assert.Empty(t, meal.AllergyWarning)
	})

	t.Run("Plan allergy info", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan/allergies", "")

		require.Equal(t, http.StatusOK, w.Code)
		info := decode[services.DietPlanAllergyInfo](t, w)
		assert.Equal(t, 3, info.FlaggedMeals)
		assert.Equal(t, services.PlanAllergyWarning, info.AllergyWarning)
	})

	t.Run("Unknown day and meal are 404", func(t *testing.T) {
		w := do(router, "GET", "/api/v1/nutrition/diet-plan/days/9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrDietDayNotFound.Error())

		w = do(router, "GET", "/api/v1/nutrition/diet-plan/days/1/meals/brunch", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMealNotFound.Error())
	})

	t.Run("Bad input is 400", func(t *testing.T) {
		cases := []string{
			"/api/v1/nutrition/diet-plan/days/monday",
			"/api/v1/nutrition/diet-plan?allergy=shellfish",
			"/api/v1/nutrition/diet-plan?allergy=shellfish:deadly",
		}
		for _, path := range cases {
			w := do(router, "GET", path, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, path)
		}
	})
}
