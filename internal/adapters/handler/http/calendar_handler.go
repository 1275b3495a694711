package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/services"
)

type CalendarHandler struct {
	svc *services.CalendarService
}

func NewCalendarHandler(svc *services.CalendarService) *CalendarHandler {
	return &CalendarHandler{
		svc: svc,
	}
}

type recordDayRequest struct {
	CompletionRatio *float64 `json:"completion_ratio" binding:"required" example:"0.7"`
}

func (h *CalendarHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/calendar", h.GetMonth)
	router.PUT("/calendar/days/:date", h.RecordDay)
	router.GET("/streak", h.GetStreak)
}

// GetMonth godoc
// @Summary Month calendar with streak
// @Description Every day of the month classified against today, plus current and longest streak.
// @Tags calendar
// @Produce json
// @Param year query int false "Year, defaults to the current year"
// @Param month query int false "Month 1-12, defaults to the current month"
// @Param today query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} domain.CalendarView
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /calendar [get]
func (h *CalendarHandler) GetMonth(c *gin.Context) {
	today, err := parseDay(c.Query("today"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	reference := today
	if reference.IsZero() {
		reference = h.svc.Today()
	}

	input := services.MonthInput{
		Year:      reference.Year(),
		Month:     int(reference.Month()),
		Reference: reference,
	}

	if raw := c.Query("year"); raw != "" {
		if input.Year, err = strconv.Atoi(raw); err != nil {
			badRequest(c, "year must be a number")
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		if input.Month, err = strconv.Atoi(raw); err != nil {
			badRequest(c, "month must be a number")
			return
		}
	}

	view, err := h.svc.GetMonth(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// RecordDay godoc
// @Summary Record a day's completion
// @Tags calendar
// @Accept json
// @Produce json
// @Param date path string true "Day (YYYY-MM-DD)"
// @Param request body recordDayRequest true "Completion ratio in [0, 1]"
// @Success 200 {object} domain.DayRecord
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /calendar/days/{date} [put]
func (h *CalendarHandler) RecordDay(c *gin.Context) {
	date, err := parseDay(c.Param("date"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var req recordDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	record, err := h.svc.RecordDay(c.Request.Context(), services.RecordDayInput{
		Date:            date,
		CompletionRatio: *req.CompletionRatio,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// GetStreak godoc
// @Summary Current and longest streak
// @Tags calendar
// @Produce json
// @Param today query string false "Reference day (YYYY-MM-DD)"
// @Success 200 {object} domain.StreakSnapshot
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /streak [get]
func (h *CalendarHandler) GetStreak(c *gin.Context) {
	today, err := parseDay(c.Query("today"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	snap, err := h.svc.GetStreak(c.Request.Context(), today)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, snap)
}
