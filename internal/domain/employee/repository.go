package employee

import "context"

// EmployeeRepository is the read side of the employee registry. The payroll
// engine has no write methods here on purpose.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetActive(ctx context.Context) ([]Employee, error)
}
