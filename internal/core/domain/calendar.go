package domain

import "time"

type AnnotatedDay struct {
	Date            string    `json:"date"`
	Day             int       `json:"day"`
	CompletionRatio float64   `json:"completion_ratio"`
	Status          DayStatus `json:"status"`
}

type StatusCounts struct {
	Complete int `json:"complete"`
	Partial  int `json:"partial"`
	Missed   int `json:"missed"`
	Future   int `json:"future"`
}

type CalendarView struct {
	Year          int            `json:"year"`
	Month         int            `json:"month"`
	LeadingBlanks int            `json:"leading_blanks"`
	CurrentStreak int            `json:"current_streak"`
	LongestStreak int            `json:"longest_streak"`
	Counts        StatusCounts   `json:"counts"`
	Days          []AnnotatedDay `json:"days"`
}

type StreakSnapshot struct {
	ReferenceDate string    `json:"reference_date"`
	Current       int       `json:"current_streak"`
	Longest       int       `json:"longest_streak"`
	ComputedAt    time.Time `json:"computed_at"`
}

func ValidateMonth(year, month int) error {
	if month < 1 || month > 12 || year < MinYear || year > MaxYear {
		return ErrInvalidMonth
	}
	return nil
}

func MonthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

func DaysInMonth(year int, month time.Month) int {
	return MonthStart(year, month).AddDate(0, 1, -1).Day()
}

// FillMonth returns one record per day of the month in ascending order.
// Records outside the month are ignored, days with no record get ratio 0 and
// for duplicated days the last record wins.
func FillMonth(year int, month time.Month, records []DayRecord) []DayRecord {
	byDay := make(map[int]DayRecord, len(records))
	for _, r := range records {
		y, m, d := r.Date.Date()
		if y != year || m != month {
			continue
		}
		byDay[d] = DayRecord{Date: DateOnly(r.Date), CompletionRatio: r.CompletionRatio}
	}

	total := DaysInMonth(year, month)
	start := MonthStart(year, month)
	days := make([]DayRecord, 0, total)
	for i := 1; i <= total; i++ {
		rec, ok := byDay[i]
		if !ok {
			rec = DayRecord{Date: start.AddDate(0, 0, i-1)}
		}
		days = append(days, rec)
	}

	return days
}

func Annotate(days []DayRecord, reference time.Time) []AnnotatedDay {
	out := make([]AnnotatedDay, 0, len(days))
	for _, d := range days {
		out = append(out, AnnotatedDay{
			Date:            d.Date.Format(DateLayout),
			Day:             d.Date.Day(),
			CompletionRatio: d.CompletionRatio,
			Status:          Classify(d, reference),
		})
	}
	return out
}

func NewCalendarView(year int, month time.Month, days []DayRecord, reference time.Time) *CalendarView {
	annotated := Annotate(days, reference)

	view := &CalendarView{
		Year:          year,
		Month:         int(month),
		LeadingBlanks: int(MonthStart(year, month).Weekday()),
		CurrentStreak: ComputeStreak(days, reference),
		LongestStreak: LongestStreak(days, reference),
		Days:          annotated,
	}

	for _, d := range annotated {
		switch d.Status {
		case DayStatusComplete:
			view.Counts.Complete++
		case DayStatusPartial:
			view.Counts.Partial++
		case DayStatusMissed:
			view.Counts.Missed++
		case DayStatusFuture:
			view.Counts.Future++
		}
	}

	return view
}

func NewStreakSnapshot(days []DayRecord, reference time.Time) StreakSnapshot {
	return StreakSnapshot{
		ReferenceDate: DateOnly(reference).Format(DateLayout),
		Current:       ComputeStreak(days, reference),
		Longest:       LongestStreak(days, reference),
		ComputedAt:    time.Now().UTC(),
	}
}
