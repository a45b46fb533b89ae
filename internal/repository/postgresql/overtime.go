package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/database"
)

type overtimeRepository struct {
	db *database.DB
}

func NewOvertimeRepository(db *database.DB) overtime.OvertimeRepository {
	return &overtimeRepository{db: db}
}

func (r *overtimeRepository) Create(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	var created overtime.OvertimeRecord
	err := q.QueryRow(ctx, `
		INSERT INTO overtime_records (
			id, employee_id, date, is_holiday, holiday_hours, tier1_hours, tier2_hours, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, date, is_holiday, holiday_hours, tier1_hours, tier2_hours, note, created_at
	`,
		record.ID, record.EmployeeID, record.Date, record.IsHoliday,
		record.HolidayHours, record.Tier1Hours, record.Tier2Hours, record.Note,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.IsHoliday,
		&created.HolidayHours, &created.Tier1Hours, &created.Tier2Hours, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to create overtime record: %w", err)
	}

	return created, nil
}

func (r *overtimeRepository) GetByID(ctx context.Context, id string) (overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	var record overtime.OvertimeRecord
	err := q.QueryRow(ctx, `
		SELECT id, employee_id, date, is_holiday, holiday_hours, tier1_hours, tier2_hours, note, created_at
		FROM overtime_records
		WHERE id = $1
	`, id).Scan(
		&record.ID, &record.EmployeeID, &record.Date, &record.IsHoliday,
		&record.HolidayHours, &record.Tier1Hours, &record.Tier2Hours, &record.Note, &record.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.OvertimeRecord{}, overtime.ErrOvertimeRecordNotFound
		}
		return overtime.OvertimeRecord{}, fmt.Errorf("failed to get overtime record: %w", err)
	}

	return record, nil
}

// ListForRange returns the employee's overtime in [from, to), oldest first.
func (r *overtimeRepository) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]overtime.OvertimeRecord, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, employee_id, date, is_holiday, holiday_hours, tier1_hours, tier2_hours, note, created_at
		FROM overtime_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC, created_at ASC
	`, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime records: %w", err)
	}
	defer rows.Close()

	var records []overtime.OvertimeRecord
	for rows.Next() {
		var record overtime.OvertimeRecord
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &record.IsHoliday,
			&record.HolidayHours, &record.Tier1Hours, &record.Tier2Hours, &record.Note, &record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan overtime record: %w", err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *overtimeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM overtime_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete overtime record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return overtime.ErrOvertimeRecordNotFound
	}

	return nil
}
