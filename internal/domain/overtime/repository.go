package overtime

import (
	"context"
	"time"
)

type OvertimeRepository interface {
	Create(ctx context.Context, record OvertimeRecord) (OvertimeRecord, error)
	GetByID(ctx context.Context, id string) (OvertimeRecord, error)
	// ListForRange returns records for the employee with from <= date < to,
	// ordered by date ascending.
	ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]OvertimeRecord, error)
	Delete(ctx context.Context, id string) error
}
