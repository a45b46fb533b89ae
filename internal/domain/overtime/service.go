package overtime

import "context"

type OvertimeService interface {
	Add(ctx context.Context, req CreateOvertimeRequest) (OvertimeRecordResponse, error)
	Remove(ctx context.Context, id string) error
	ListForPeriod(ctx context.Context, employeeID string, year, month int) ([]OvertimeRecordResponse, error)
}
