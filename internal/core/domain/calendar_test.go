package domain_test

import (
	"testing"
	"time"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, domain.DaysInMonth(2024, time.January))
	assert.Equal(t, 29, domain.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, domain.DaysInMonth(2023, time.February))
	assert.Equal(t, 30, domain.DaysInMonth(2024, time.April))
}

func TestValidateMonth(t *testing.T) {
	assert.NoError(t, domain.ValidateMonth(2024, 1))
	assert.NoError(t, domain.ValidateMonth(2024, 12))
	assert.ErrorIs(t, domain.ValidateMonth(2024, 0), domain.ErrInvalidMonth)
	assert.ErrorIs(t, domain.ValidateMonth(2024, 13), domain.ErrInvalidMonth)
	assert.ErrorIs(t, domain.ValidateMonth(0, 5), domain.ErrInvalidMonth)
}

func TestFillMonth(t *testing.T) {
	input := []domain.DayRecord{
		{Date: time.Date(2024, time.February, 3, 8, 0, 0, 0, time.UTC), CompletionRatio: 1.0},
		{Date: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), CompletionRatio: 0.7},
		{Date: time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), CompletionRatio: 1.0},
		{Date: time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), CompletionRatio: 0.4},
	}

	days := domain.FillMonth(2024, time.February, input)

	require.Len(t, days, 29)
	for i, d := range days {
		assert.Equal(t, i+1, d.Date.Day())
		assert.Equal(t, time.February, d.Date.Month())
	}
	assert.Equal(t, 0.7, days[0].CompletionRatio)
	assert.Equal(t, 0.0, days[1].CompletionRatio, "missing day defaults to zero")
	assert.Equal(t, 0.4, days[2].CompletionRatio, "last duplicate wins")
	assert.Equal(t, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), days[2].Date)
}

func TestNewCalendarView(t *testing.T) {
	// March 2024 starts on a Friday.
	days := domain.FillMonth(2024, time.March, []domain.DayRecord{
		{Date: day(1), CompletionRatio: 1.0},
		{Date: day(2), CompletionRatio: 1.0},
		{Date: day(3), CompletionRatio: 0.7},
		{Date: day(4), CompletionRatio: 1.0},
		{Date: day(5), CompletionRatio: 1.0},
		{Date: day(6), CompletionRatio: 0.2},
		{Date: day(7), CompletionRatio: 1.0},
	})

	view := domain.NewCalendarView(2024, time.March, days, day(7))

	assert.Equal(t, 2024, view.Year)
	assert.Equal(t, 3, view.Month)
	assert.Equal(t, 5, view.LeadingBlanks)
	assert.Equal(t, 1, view.CurrentStreak)
	assert.Equal(t, 2, view.LongestStreak)
	require.Len(t, view.Days, 31)

	assert.Equal(t, "2024-03-01", view.Days[0].Date)
	assert.Equal(t, domain.DayStatusComplete, view.Days[0].Status)
	assert.Equal(t, domain.DayStatusPartial, view.Days[2].Status)
	assert.Equal(t, domain.DayStatusMissed, view.Days[5].Status)
	assert.Equal(t, domain.DayStatusFuture, view.Days[7].Status)

	assert.Equal(t, domain.StatusCounts{Complete: 5, Partial: 1, Missed: 1, Future: 24}, view.Counts)
}

func TestNewStreakSnapshot(t *testing.T) {
	snap := domain.NewStreakSnapshot(records(1.0, 0.6, 1.0, 1.0), day(4).Add(10*time.Hour))

	assert.Equal(t, "2024-03-04", snap.ReferenceDate)
	assert.Equal(t, 2, snap.Current)
	assert.Equal(t, 2, snap.Longest)
	assert.WithinDuration(t, time.Now().UTC(), snap.ComputedAt, 2*time.Second)
}
