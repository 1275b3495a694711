package domain

import (
	"errors"
	"math"
	"time"
)

var (
	ErrInvalidCompletionRatio = errors.New("completion ratio must be between 0 and 1")
	ErrInvalidDate            = errors.New("date is required")
	ErrDateOutOfRange         = errors.New("date out of range (years 1-9999)")
	ErrInvalidMonth           = errors.New("invalid month (must be 1-12)")
)

const DateLayout = "2006-01-02"

const (
	MinYear = 1
	MaxYear = 9999
)

type DayStatus string

const (
	DayStatusFuture   DayStatus = "future"
	DayStatusComplete DayStatus = "complete"
	DayStatusPartial  DayStatus = "partial"
	DayStatusMissed   DayStatus = "missed"
)

const (
	FullCompletion   = 1.0
	PartialThreshold = 0.5
)

// DayRecord is the fraction of a day's health goals that were completed.
type DayRecord struct {
	Date            time.Time `json:"date" db:"day"`
	CompletionRatio float64   `json:"completion_ratio" db:"completion_ratio"`
}

func NewDayRecord(date time.Time, ratio float64) (DayRecord, error) {
	rec := DayRecord{Date: DateOnly(date), CompletionRatio: ratio}
	if err := rec.Validate(); err != nil {
		return DayRecord{}, err
	}
	return rec, nil
}

func (d DayRecord) Validate() error {
	if d.Date.IsZero() {
		return ErrInvalidDate
	}
	if y := d.Date.Year(); y < MinYear || y > MaxYear {
		return ErrDateOutOfRange
	}
	if math.IsNaN(d.CompletionRatio) || d.CompletionRatio < 0 || d.CompletionRatio > FullCompletion {
		return ErrInvalidCompletionRatio
	}
	return nil
}

func (d DayRecord) IsComplete() bool {
	return d.CompletionRatio == FullCompletion
}

// DateOnly drops the clock part of t, keeping the calendar day as seen in t's
// own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsEligible reports whether the record's day is on or before the reference day.
func (d DayRecord) IsEligible(reference time.Time) bool {
	return !DateOnly(d.Date).After(DateOnly(reference))
}

// Classify maps a day to the status used by the calendar colours.
// Ratios above 1 are a caller error and land on Partial, like any value > 0.5.
func Classify(day DayRecord, reference time.Time) DayStatus {
	if !day.IsEligible(reference) {
		return DayStatusFuture
	}

	switch {
	case day.CompletionRatio == FullCompletion:
		return DayStatusComplete
	case day.CompletionRatio > PartialThreshold:
		return DayStatusPartial
	default:
		return DayStatusMissed
	}
}

func eligibleDays(days []DayRecord, reference time.Time) []DayRecord {
	eligible := make([]DayRecord, 0, len(days))
	for _, d := range days {
		if d.IsEligible(reference) {
			eligible = append(eligible, d)
		}
	}
	return eligible
}

// ComputeStreak counts the consecutive fully completed days ending at the most
// recent day on or before reference. days must be sorted ascending; the input
// is not validated.
func ComputeStreak(days []DayRecord, reference time.Time) int {
	eligible := eligibleDays(days, reference)
	if len(eligible) == 0 {
		return 0
	}

	if !eligible[len(eligible)-1].IsComplete() {
		return 0
	}

	streak := 0
	for i := len(eligible) - 1; i >= 0; i-- {
		if !eligible[i].IsComplete() {
			break
		}
		streak++
	}

	return streak
}

// LongestStreak is the longest run of fully completed eligible days.
func LongestStreak(days []DayRecord, reference time.Time) int {
	longest := 0
	run := 0

	for _, d := range eligibleDays(days, reference) {
		if d.IsComplete() {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}

	return longest
}
