package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type NutritionHandler struct {
	svc *services.NutritionService
}

func NewNutritionHandler(svc *services.NutritionService) *NutritionHandler {
	return &NutritionHandler{
		svc: svc,
	}
}

type createNutritionGoalRequest struct {
	Name    string  `json:"name" binding:"required" example:"Protein"`
	Current float64 `json:"current" example:"80"`
	Target  float64 `json:"target" example:"100"`
	Color   string  `json:"color" example:"#1976D2"`
}

type allergyCheckRequest struct {
	Foods     []string         `json:"foods" binding:"required"`
	Allergies []domain.Allergy `json:"allergies"`
}

func (h *NutritionHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.GET("/goals", h.List)
		nutrition.POST("/goals", h.Create)
		nutrition.DELETE("/goals/:id", h.Delete)
		nutrition.GET("/summary", h.Summary)
		nutrition.POST("/allergy-check", h.CheckAllergies)
	}
}

// List godoc
// @Summary Nutrition goals
// @Tags nutrition
// @Produce json
// @Success 200 {array} domain.NutritionGoal
// @Failure 500 {object} errorResponse
// @Router /nutrition/goals [get]
func (h *NutritionHandler) List(c *gin.Context) {
	goals, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goals)
}

// Create godoc
// @Summary Add a nutrition goal
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body createNutritionGoalRequest true "Nutrition goal"
// @Success 201 {object} domain.NutritionGoal
// @Failure 400 {object} errorResponse
// @Router /nutrition/goals [post]
func (h *NutritionHandler) Create(c *gin.Context) {
	var req createNutritionGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.Add(c.Request.Context(), services.AddNutritionGoalInput{
		Name:    req.Name,
		Current: req.Current,
		Target:  req.Target,
		Color:   req.Color,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// Delete godoc
// @Summary Remove a nutrition goal
// @Tags nutrition
// @Param id path string true "Goal ID" format(uuid)
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /nutrition/goals/{id} [delete]
func (h *NutritionHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Summary godoc
// @Summary Daily nutrition completion rings
// @Tags nutrition
// @Produce json
// @Success 200 {object} domain.NutritionSummary
// @Failure 500 {object} errorResponse
// @Router /nutrition/summary [get]
func (h *NutritionHandler) Summary(c *gin.Context) {
	summary, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// CheckAllergies godoc
// @Summary Rate foods against allergies
// @Tags nutrition
// @Accept json
// @Produce json
// @Param request body allergyCheckRequest true "Foods and allergies"
// @Success 200 {object} services.AllergyCheckResult
// @Failure 400 {object} errorResponse
// @Router /nutrition/allergy-check [post]
func (h *NutritionHandler) CheckAllergies(c *gin.Context) {
	var req allergyCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	result, err := h.svc.CheckAllergies(services.AllergyCheckInput{
		Foods:     req.Foods,
		Allergies: req.Allergies,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
