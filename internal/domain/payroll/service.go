package payroll

import "context"

// PayrollService owns payslip mutation and the status state machine. All
// write paths serialize per payslip id.
type PayrollService interface {
	GetOrCreate(ctx context.Context, employeeID, periodID string) (PayslipResponse, error)
	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListByPeriod(ctx context.Context, year, month int) ([]PayslipResponse, error)
	Recalculate(ctx context.Context, id string) (PayslipResponse, error)
	SetManualAdjustments(ctx context.Context, req SetAdjustmentsRequest) (PayslipResponse, error)
	Confirm(ctx context.Context, id string) (PayslipResponse, error)
	Unconfirm(ctx context.Context, id string) (PayslipResponse, error)
	Pay(ctx context.Context, id string) (PayslipResponse, error)
}

// PeriodService triggers batch calculation for one calendar month across all
// active employees.
type PeriodService interface {
	ProcessPeriod(ctx context.Context, year, month int) (ProcessReport, error)
}
