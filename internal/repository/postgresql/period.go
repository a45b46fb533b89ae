package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, `
		SELECT id, year, month, completed_at, created_at
		FROM payroll_periods
		WHERE id = $1
	`, id).Scan(&p.ID, &p.Year, &p.Month, &p.CompletedAt, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) GetByYearMonth(ctx context.Context, year, month int) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, `
		SELECT id, year, month, completed_at, created_at
		FROM payroll_periods
		WHERE year = $1 AND month = $2
	`, year, month).Scan(&p.ID, &p.Year, &p.Month, &p.CompletedAt, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period by year and month: %w", err)
	}

	return p, nil
}

// GetOrCreate upserts the (year, month) period. The no-op DO UPDATE makes
// the RETURNING clause yield the existing row when another caller won the
// insert race.
func (r *periodRepository) GetOrCreate(ctx context.Context, year, month int) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, `
		INSERT INTO payroll_periods (id, year, month)
		VALUES ($1, $2, $3)
		ON CONFLICT (year, month) DO UPDATE SET year = EXCLUDED.year
		RETURNING id, year, month, completed_at, created_at
	`, uuid.NewString(), year, month).Scan(&p.ID, &p.Year, &p.Month, &p.CompletedAt, &p.CreatedAt)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get or create payroll period: %w", err)
	}

	return p, nil
}

func (r *periodRepository) MarkCompleted(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		UPDATE payroll_periods
		SET completed_at = NOW()
		WHERE id = $1 AND completed_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark payroll period completed: %w", err)
	}

	return nil
}
