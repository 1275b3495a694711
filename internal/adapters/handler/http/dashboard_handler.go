package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type DashboardHandler struct {
	svc *services.DashboardService
	now func() time.Time
}

// NewDashboardHandler takes the clock used when the request has no today parameter.
func NewDashboardHandler(svc *services.DashboardService, now func() time.Time) *DashboardHandler {
	return &DashboardHandler{
		svc: svc,
		now: now,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.Summary)
}

// Summary godoc
// @Summary Home screen cards
// @Tags dashboard
// @Produce json
// @Param today query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} errorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	now, err := parseDay(c.Query("today"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	if now.IsZero() {
		now = h.now()
	}

	c.JSON(http.StatusOK, h.svc.Summary(c.Request.Context(), now))
}
