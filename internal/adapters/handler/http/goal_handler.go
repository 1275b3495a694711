package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{
		svc: svc,
	}
}

type createGoalRequest struct {
	Title string `json:"title" binding:"required" example:"Drink 2L water"`
}

type updateGoalRequest struct {
	Done *bool `json:"done" binding:"required"`
}

type goalListResponse struct {
	Goals    []*domain.HealthGoal `json:"goals"`
	Progress domain.GoalProgress  `json:"progress"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.GET("", h.List)
		goals.POST("", h.Create)
		goals.PATCH("/:id", h.SetDone)
		goals.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary Health goals with progress
// @Tags goals
// @Produce json
// @Success 200 {object} goalListResponse
// @Failure 500 {object} errorResponse
// @Router /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	goals, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goalListResponse{
		Goals:    goals,
		Progress: domain.SummarizeGoals(goals),
	})
}

// Create godoc
// @Summary Add a health goal
// @Tags goals
// @Accept json
// @Produce json
// @Param request body createGoalRequest true "Goal"
// @Success 201 {object} domain.HealthGoal
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.Add(c.Request.Context(), req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// SetDone godoc
// @Summary Mark a goal done or not done
// @Tags goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID" format(uuid)
// @Param request body updateGoalRequest true "Done flag"
// @Success 200 {object} domain.HealthGoal
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [patch]
func (h *GoalHandler) SetDone(c *gin.Context) {
	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.SetDone(c.Request.Context(), c.Param("id"), *req.Done)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary Remove a health goal
// @Tags goals
// @Param id path string true "Goal ID" format(uuid)
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
