package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error" example:"goal not found"`
}

var badRequestErrors = []error{
	domain.ErrInvalidCompletionRatio,
	domain.ErrInvalidDate,
	domain.ErrDateOutOfRange,
	domain.ErrInvalidMonth,
	domain.ErrGoalTitleEmpty,
	domain.ErrGoalTitleTooLong,
	domain.ErrNutritionNameEmpty,
	domain.ErrNutritionNameTooLong,
	domain.ErrInvalidNutritionValue,
	domain.ErrInvalidColor,
	domain.ErrAllergyNameEmpty,
	domain.ErrInvalidSeverity,
}

var notFoundErrors = []error{
	domain.ErrGoalNotFound,
	domain.ErrNutritionGoalNotFound,
	domain.ErrDietDayNotFound,
	domain.ErrMealNotFound,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps domain errors to 400/404. Anything else is logged by the
// request logger and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case isAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case isAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

// parseDay reads an optional YYYY-MM-DD value. Empty input gives the zero time.
func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(domain.DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, use YYYY-MM-DD")
	}
	return t, nil
}
