package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type DietPlanHandler struct {
	svc *services.DietPlanService
}

func NewDietPlanHandler(svc *services.DietPlanService) *DietPlanHandler {
	return &DietPlanHandler{
		svc: svc,
	}
}

func (h *DietPlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plan := router.Group("/nutrition/diet-plan")
	{
		plan.GET("", h.Plan)
		plan.GET("/allergies", h.Allergies)
		plan.GET("/days/:day", h.Day)
		plan.GET("/days/:day/meals/:meal", h.Meal)
	}
}

// parseAllergies reads repeated allergy=name:severity params. No params means
// the service's own profile.
func parseAllergies(c *gin.Context) ([]domain.Allergy, bool) {
	raw := c.QueryArray("allergy")
	if len(raw) == 0 {
		return nil, true
	}

	allergies := make([]domain.Allergy, 0, len(raw))
	for _, r := range raw {
		i := strings.LastIndex(r, ":")
		if i <= 0 {
			badRequest(c, "allergy must be name:severity")
			return nil, false
		}
		allergies = append(allergies, domain.Allergy{
			Name:     strings.TrimSpace(r[:i]),
			Severity: strings.TrimSpace(r[i+1:]),
		})
	}
	return allergies, true
}

func parsePlanDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		badRequest(c, "day must be an integer")
		return 0, false
	}
	return day, true
}

// Plan godoc
// @Summary Weekly diet plan with allergy alerts
// @Tags nutrition
// @Produce json
// @Param allergy query []string false "Allergy as name:severity, repeatable" collectionFormat(multi)
// @Success 200 {object} domain.DietPlan
// @Failure 400 {object} errorResponse
// @Router /nutrition/diet-plan [get]
func (h *DietPlanHandler) Plan(c *gin.Context) {
	allergies, ok := parseAllergies(c)
	if !ok {
		return
	}

	plan, err := h.svc.Plan(c.Request.Context(), allergies)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

// Day godoc
// @Summary One day of the diet plan
// @Tags nutrition
// @Produce json
// @Param day path int true "Day number (1-7)"
// @Param allergy query []string false "Allergy as name:severity, repeatable" collectionFormat(multi)
// @Success 200 {object} domain.DietDay
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /nutrition/diet-plan/days/{day} [get]
func (h *DietPlanHandler) Day(c *gin.Context) {
	day, ok := parsePlanDay(c)
	if !ok {
		return
	}
	allergies, ok := parseAllergies(c)
	if !ok {
		return
	}

	d, err := h.svc.Day(c.Request.Context(), day, allergies)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

// Meal godoc
// @Summary One meal of a diet plan day
// @Tags nutrition
// @Produce json
// @Param day path int true "Day number (1-7)"
// @Param meal path string true "Meal name, e.g. lunch"
// @Param allergy query []string false "Allergy as name:severity, repeatable" collectionFormat(multi)
// @Success 200 {object} domain.Meal
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /nutrition/diet-plan/days/{day}/meals/{meal} [get]
func (h *DietPlanHandler) Meal(c *gin.Context) {
	day, ok := parsePlanDay(c)
	if !ok {
		return
	}
	allergies, ok := parseAllergies(c)
	if !ok {
		return
	}

	meal, err := h.svc.Meal(c.Request.Context(), day, c.Param("meal"), allergies)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meal)
}

// Allergies godoc
// @Summary Plan-level allergy information
// @Tags nutrition
// @Produce json
// @Param allergy query []string false "Allergy as name:severity, repeatable" collectionFormat(multi)
// @Success 200 {object} services.DietPlanAllergyInfo
// @Failure 400 {object} errorResponse
// @Router /nutrition/diet-plan/allergies [get]
func (h *DietPlanHandler) Allergies(c *gin.Context) {
	allergies, ok := parseAllergies(c)
	if !ok {
		return
	}

	info, err := h.svc.AllergyInfo(c.Request.Context(), allergies)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, info)
}
