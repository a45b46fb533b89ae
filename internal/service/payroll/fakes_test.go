package payroll

import (
	"context"
	"sync"
	"time"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
)

// In-memory doubles for the repository interfaces. They keep the same error
// contracts as the PostgreSQL implementations, including version bumping on
// update.

type fakeTxManager struct{}

func (fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePayslipRepo struct {
	mu       sync.Mutex
	payslips map[string]payroll.Payslip
}

func newFakePayslipRepo() *fakePayslipRepo {
	return &fakePayslipRepo{payslips: make(map[string]payroll.Payslip)}
}

func (r *fakePayslipRepo) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.payslips {
		if existing.EmployeeID == p.EmployeeID && existing.PeriodID == p.PeriodID {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
	}
	p.Version = 1
	p.CreatedAt = time.Now().UTC()
	p.UpdatedAt = p.CreatedAt
	r.payslips[p.ID] = p
	return p, nil
}

func (r *fakePayslipRepo) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payslips[id]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return p, nil
}

func (r *fakePayslipRepo) GetForUpdate(ctx context.Context, id string) (payroll.Payslip, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePayslipRepo) GetByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.payslips {
		if p.EmployeeID == employeeID && p.PeriodID == periodID {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (r *fakePayslipRepo) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []payroll.Payslip
	for _, p := range r.payslips {
		if p.PeriodID == periodID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePayslipRepo) Update(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.payslips[p.ID]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	if stored.Version != p.Version {
		return payroll.Payslip{}, payroll.ErrStaleRecord
	}
	p.Version++
	p.UpdatedAt = time.Now().UTC()
	r.payslips[p.ID] = p
	return p, nil
}

func (r *fakePayslipRepo) CountUnpaidByPeriod(ctx context.Context, periodID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, p := range r.payslips {
		if p.PeriodID == periodID && p.Status != payroll.PayslipStatusPaid {
			count++
		}
	}
	return count, nil
}

// racingPayslipRepo bumps the row version between the lock read and the
// caller's write, imitating a writer that slipped in on another connection.
type racingPayslipRepo struct {
	*fakePayslipRepo
	raced bool
}

func (r *racingPayslipRepo) GetForUpdate(ctx context.Context, id string) (payroll.Payslip, error) {
	p, err := r.fakePayslipRepo.GetForUpdate(ctx, id)
	if err != nil {
		return payroll.Payslip{}, err
	}
	if !r.raced {
		r.raced = true
		if _, err := r.fakePayslipRepo.Update(ctx, p); err != nil {
			return payroll.Payslip{}, err
		}
	}
	return p, nil
}

// contestedCreateRepo seeds the winner's row and answers Create with the
// duplicate error, imitating an insert race lost to another caller.
type contestedCreateRepo struct {
	*fakePayslipRepo
}

func (r *contestedCreateRepo) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	winner := p
	winner.ID = "winner-" + p.ID
	if _, err := r.fakePayslipRepo.Create(ctx, winner); err != nil {
		return payroll.Payslip{}, err
	}
	return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
}

type fakePeriodRepo struct {
	mu      sync.Mutex
	periods map[string]payroll.PayrollPeriod
	nextID  int
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{periods: make(map[string]payroll.PayrollPeriod)}
}

func (r *fakePeriodRepo) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) GetByYearMonth(ctx context.Context, year, month int) (payroll.PayrollPeriod, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.periods {
		if p.Year == year && p.Month == month {
			return p, nil
		}
	}
	return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
}

func (r *fakePeriodRepo) GetOrCreate(ctx context.Context, year, month int) (payroll.PayrollPeriod, error) {
	if p, err := r.GetByYearMonth(ctx, year, month); err == nil {
		return p, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	p := payroll.PayrollPeriod{
		ID:        "period-" + time.Now().Format("150405.000000000") + string(rune('a'+r.nextID%26)),
		Year:      year,
		Month:     month,
		CreatedAt: time.Now().UTC(),
	}
	r.periods[p.ID] = p
	return p, nil
}

func (r *fakePeriodRepo) MarkCompleted(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.periods[id]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	if p.CompletedAt == nil {
		now := time.Now().UTC()
		p.CompletedAt = &now
		r.periods[id] = p
	}
	return nil
}

type fakeOvertimeRepo struct {
	mu      sync.Mutex
	records []overtime.OvertimeRecord
}

func (r *fakeOvertimeRepo) Create(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record.CreatedAt = time.Now().UTC()
	r.records = append(r.records, record)
	return record, nil
}

func (r *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return overtime.OvertimeRecord{}, overtime.ErrOvertimeRecordNotFound
}

func (r *fakeOvertimeRepo) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]overtime.OvertimeRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []overtime.OvertimeRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID && !record.Date.Before(from) && record.Date.Before(to) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeOvertimeRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return overtime.ErrOvertimeRecordNotFound
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(employees ...employee.Employee) *fakeEmployeeRepo {
	m := make(map[string]employee.Employee, len(employees))
	for _, e := range employees {
		m[e.ID] = e
	}
	return &fakeEmployeeRepo{employees: m}
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, e := range r.employees {
		if e.IsActive {
			result = append(result, e)
		}
	}
	return result, nil
}
