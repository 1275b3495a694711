package repository

import (
	"context"
	"sync"
	"time"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

var _ domain.DayRecordRepository = (*SimulatedCalendarRepository)(nil)

// SimulatedCalendarRepository serves a repeating eight day pattern: five
// complete days, two partial days (0.7) and one missed day (0.3). Upserted
// days override the pattern for the lifetime of the process.
type SimulatedCalendarRepository struct {
	overrides map[string]float64

	mu sync.RWMutex
}

func NewSimulatedCalendarRepository() *SimulatedCalendarRepository {
	return &SimulatedCalendarRepository{
		overrides: make(map[string]float64),
	}
}

func SimulatedRatio(dayOfMonth int) float64 {
	switch mod := (dayOfMonth - 1) % 8; {
	case mod < 5:
		return 1.0
	case mod < 7:
		return 0.7
	default:
		return 0.3
	}
}

// SimulateMonth builds the fixture month without any overrides.
func SimulateMonth(year int, month time.Month) []domain.DayRecord {
	start := domain.MonthStart(year, month)
	total := domain.DaysInMonth(year, month)

	days := make([]domain.DayRecord, 0, total)
	for d := 1; d <= total; d++ {
		days = append(days, domain.DayRecord{
			Date:            start.AddDate(0, 0, d-1),
			CompletionRatio: SimulatedRatio(d),
		})
	}
	return days
}

func (r *SimulatedCalendarRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.DayRecord, error) {
	days := SimulateMonth(year, month)

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range days {
		if v, ok := r.overrides[days[i].Date.Format(domain.DateLayout)]; ok {
			days[i].CompletionRatio = v
		}
	}
	return days, nil
}

func (r *SimulatedCalendarRepository) Upsert(ctx context.Context, record domain.DayRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.overrides[domain.DateOnly(record.Date).Format(domain.DateLayout)] = record.CompletionRatio
	return nil
}
