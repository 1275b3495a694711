package workers

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

type DayRecordRepository interface {
	ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.DayRecord, error)
}

type StreakJob struct {
	Reference time.Time
}

// StreakWorker recomputes the streak for a reference day off the request path
// and stores the result as the latest snapshot.
type StreakWorker struct {
	dayRepo DayRecordRepository
	store   domain.SnapshotStore
	log     *zap.SugaredLogger
	jobs    chan StreakJob
}

func NewStreakWorker(dayRepo DayRecordRepository, store domain.SnapshotStore, log *zap.SugaredLogger) *StreakWorker {
	return &StreakWorker{
		dayRepo: dayRepo,
		store:   store,
		log:     log,
		jobs:    make(chan StreakJob, 100),
	}
}

func (w *StreakWorker) Start(ctx context.Context) {
	go func() {
		w.log.Info("Streak Worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				w.log.Info("Streak Worker shutting down...")
				return
			}
		}
	}()
}

func (w *StreakWorker) Enqueue(reference time.Time) {
	select {
	case w.jobs <- StreakJob{Reference: reference}:
	default:
		w.log.Warnf("Streak Worker queue full! Dropping job for %s", reference.Format(domain.DateLayout))
	}
}

func (w *StreakWorker) processJob(ctx context.Context, job StreakJob) {
	ctx, span := otel.Tracer("health-dashboard/worker").Start(ctx, "StreakWorker.processJob")
	defer span.End()

	year, month, _ := job.Reference.Date()
	span.SetAttributes(attribute.String("streak.reference", job.Reference.Format(domain.DateLayout)))

	records, err := w.dayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		w.log.Errorf("Worker Error fetching %04d-%02d: %v", year, int(month), err)
		return
	}

	days := domain.FillMonth(year, month, records)
	snapshot := domain.NewStreakSnapshot(days, job.Reference)

	span.SetAttributes(attribute.Int("streak.current", snapshot.Current))

	if err := w.store.Save(ctx, snapshot); err != nil {
		span.SetStatus(codes.Error, err.Error())
		w.log.Errorf("Worker Failed to save streak snapshot: %v", err)
		return
	}

	w.log.Infof("Streak updated for %s: Current=%d, Longest=%d", snapshot.ReferenceDate, snapshot.Current, snapshot.Longest)
}
