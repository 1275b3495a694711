package domain

import (
	"context"
	"time"
)

type DayRecordRepository interface {
	// ListByMonth returns the stored records of a month in ascending date order.
	// Days without a record are simply absent.
	ListByMonth(ctx context.Context, year int, month time.Month) ([]DayRecord, error)

	// Upsert stores the completion ratio of a day, replacing any previous value.
	Upsert(ctx context.Context, record DayRecord) error
}

type HealthGoalRepository interface {
	Create(ctx context.Context, goal *HealthGoal) error

	GetByID(ctx context.Context, id string) (*HealthGoal, error)

	// List returns the goals in display order.
	List(ctx context.Context) ([]*HealthGoal, error)

	Update(ctx context.Context, goal *HealthGoal) error

	Delete(ctx context.Context, id string) error
}

type NutritionGoalRepository interface {
	Create(ctx context.Context, goal *NutritionGoal) error

	// List returns the goals in display order. The first MaxRings feed the rings.
	List(ctx context.Context) ([]*NutritionGoal, error)

	Delete(ctx context.Context, id string) error
}

type ArticleRepository interface {
	List(ctx context.Context) ([]Article, error)
}

// SnapshotStore keeps the last streak computed by the background worker.
type SnapshotStore interface {
	Save(ctx context.Context, snapshot StreakSnapshot) error

	// Latest returns ok=false when nothing has been stored yet.
	Latest(ctx context.Context) (snapshot StreakSnapshot, ok bool, err error)
}

type DietPlanRepository interface {
	// Get returns the current weekly plan without allergy annotations.
	Get(ctx context.Context) (DietPlan, error)
}
