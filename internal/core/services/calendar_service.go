package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type StreakEnqueuer interface {
	Enqueue(reference time.Time)
}

type CalendarService struct {
	repo      domain.DayRecordRepository
	snapshots domain.SnapshotStore
	worker    StreakEnqueuer
	location  *time.Location
	now       func() time.Time
	log       *zap.SugaredLogger
}

// NewCalendarService accepts a nil snapshots store and a nil worker.
func NewCalendarService(repo domain.DayRecordRepository, snapshots domain.SnapshotStore, worker StreakEnqueuer, location *time.Location, log *zap.SugaredLogger) *CalendarService {
	if location == nil {
		location = time.UTC
	}
	return &CalendarService{
		repo:      repo,
		snapshots: snapshots,
		worker:    worker,
		location:  location,
		now:       time.Now,
		log:       log,
	}
}

// SetClock replaces the source of "today".
func (s *CalendarService) SetClock(now func() time.Time) {
	s.now = now
}

// Today is the current instant in the service's time zone.
func (s *CalendarService) Today() time.Time {
	return s.now().In(s.location)
}

type MonthInput struct {
	Year      int
	Month     int
	Reference time.Time
}

type RecordDayInput struct {
	Date            time.Time
	CompletionRatio float64
}

func (s *CalendarService) loadMonth(ctx context.Context, year int, month time.Month) ([]domain.DayRecord, error) {
	records, err := s.repo.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("calendar service: failed to load %04d-%02d: %w", year, int(month), err)
	}
	return domain.FillMonth(year, month, records), nil
}

func (s *CalendarService) GetMonth(ctx context.Context, input MonthInput) (*domain.CalendarView, error) {
	if err := domain.ValidateMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	reference := input.Reference
	if reference.IsZero() {
		reference = s.Today()
	}

	month := time.Month(input.Month)
	days, err := s.loadMonth(ctx, input.Year, month)
	if err != nil {
		return nil, err
	}

	return domain.NewCalendarView(input.Year, month, days, reference), nil
}

// GetStreak computes the streak of the reference day's month. When the
// calendar source fails it falls back to a stored snapshot for the same day.
func (s *CalendarService) GetStreak(ctx context.Context, reference time.Time) (domain.StreakSnapshot, error) {
	if reference.IsZero() {
		reference = s.Today()
	}
	year, month, _ := reference.Date()

	days, err := s.loadMonth(ctx, year, month)
	if err == nil {
		return domain.NewStreakSnapshot(days, reference), nil
	}

	if s.snapshots != nil {
		snap, ok, snapErr := s.snapshots.Latest(ctx)
		if snapErr != nil {
			s.log.Warnf("Snapshot store unavailable: %v", snapErr)
		} else if ok && snap.ReferenceDate == domain.DateOnly(reference).Format(domain.DateLayout) {
			s.log.Warnf("Serving stored streak snapshot, calendar source failed: %v", err)
			return snap, nil
		}
	}

	return domain.StreakSnapshot{}, err
}

func (s *CalendarService) RecordDay(ctx context.Context, input RecordDayInput) (domain.DayRecord, error) {
	record, err := domain.NewDayRecord(input.Date, input.CompletionRatio)
	if err != nil {
		return domain.DayRecord{}, err
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return domain.DayRecord{}, fmt.Errorf("calendar service: failed to record %s: %w", record.Date.Format(domain.DateLayout), err)
	}

	if s.worker != nil {
		s.worker.Enqueue(s.Today())
	}

	return record, nil
}
