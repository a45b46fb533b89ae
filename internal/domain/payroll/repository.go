package payroll

import "context"

// PayslipRepository defines data access for payslips. Mutations are expected
// to run inside a transaction started by the lifecycle service; GetForUpdate
// takes the row lock that serializes writers on a single payslip.
type PayslipRepository interface {
	Create(ctx context.Context, payslip Payslip) (Payslip, error)
	GetByID(ctx context.Context, id string) (Payslip, error)
	GetForUpdate(ctx context.Context, id string) (Payslip, error)
	GetByEmployeePeriod(ctx context.Context, employeeID, periodID string) (Payslip, error)
	ListByPeriod(ctx context.Context, periodID string) ([]Payslip, error)
	// Update writes all mutable fields and bumps the version. The row must
	// still carry payslip.Version; otherwise ErrStaleRecord is returned.
	Update(ctx context.Context, payslip Payslip) (Payslip, error)
	CountUnpaidByPeriod(ctx context.Context, periodID string) (int, error)
}

type PeriodRepository interface {
	GetByID(ctx context.Context, id string) (PayrollPeriod, error)
	GetByYearMonth(ctx context.Context, year, month int) (PayrollPeriod, error)
	// GetOrCreate returns the period for (year, month), creating it on first
	// access. Safe to call concurrently.
	GetOrCreate(ctx context.Context, year, month int) (PayrollPeriod, error)
	MarkCompleted(ctx context.Context, id string) error
}

// TxManager runs fn inside a single database transaction; repository calls
// made with the context fn receives join that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
