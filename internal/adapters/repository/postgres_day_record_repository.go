package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

var _ domain.DayRecordRepository = (*PostgresDayRecordRepository)(nil)

const dayRecordsSchema = `
	CREATE TABLE IF NOT EXISTS day_records (
		day              DATE PRIMARY KEY,
		completion_ratio DOUBLE PRECISION NOT NULL
			CHECK (completion_ratio >= 0 AND completion_ratio <= 1),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`

type PostgresDayRecordRepository struct {
	db *sqlx.DB
}

func NewPostgresDayRecordRepository(db *sqlx.DB) *PostgresDayRecordRepository {
	return &PostgresDayRecordRepository{db: db}
}

func (r *PostgresDayRecordRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, dayRecordsSchema); err != nil {
		return fmt.Errorf("day records: failed to create schema: %w", err)
	}
	return nil
}

func (r *PostgresDayRecordRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.DayRecord, error) {
	from := domain.MonthStart(year, month)
	to := from.AddDate(0, 1, 0)

	records := []domain.DayRecord{}

	query := `
		SELECT day, completion_ratio FROM day_records
		WHERE day >= $1
		  AND day < $2
		ORDER BY day ASC`

	if err := r.db.SelectContext(ctx, &records, query, from, to); err != nil {
		return nil, fmt.Errorf("day records: list %04d-%02d: %w", year, month, err)
	}

	for i := range records {
		records[i].Date = domain.DateOnly(records[i].Date)
	}
	return records, nil
}

func (r *PostgresDayRecordRepository) Upsert(ctx context.Context, record domain.DayRecord) error {
	query := `
		INSERT INTO day_records (day, completion_ratio, updated_at)
		VALUES (:day, :completion_ratio, now())
		ON CONFLICT (day) DO UPDATE
		SET completion_ratio = EXCLUDED.completion_ratio,
		    updated_at = now()`

	row := domain.DayRecord{Date: domain.DateOnly(record.Date), CompletionRatio: record.CompletionRatio}

	_, err := r.db.NamedExecContext(ctx, query, row)
	if err != nil {
		if sqlState(err) == checkViolation {
			return domain.ErrInvalidCompletionRatio
		}
		return fmt.Errorf("day records: upsert %s: %w", row.Date.Format(domain.DateLayout), err)
	}
	return nil
}

const checkViolation = "23514"

// sqlState extracts the SQLSTATE code from either driver's error type.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}
