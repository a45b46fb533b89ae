package overtime

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/validator"
)

type fakeOvertimeRepo struct {
	records []overtime.OvertimeRecord
}

func (r *fakeOvertimeRepo) Create(ctx context.Context, record overtime.OvertimeRecord) (overtime.OvertimeRecord, error) {
	record.CreatedAt = time.Now().UTC()
	r.records = append(r.records, record)
	return record, nil
}

func (r *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.OvertimeRecord, error) {
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return overtime.OvertimeRecord{}, overtime.ErrOvertimeRecordNotFound
}

func (r *fakeOvertimeRepo) ListForRange(ctx context.Context, employeeID string, from, to time.Time) ([]overtime.OvertimeRecord, error) {
	var result []overtime.OvertimeRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID && !record.Date.Before(from) && record.Date.Before(to) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeOvertimeRepo) Delete(ctx context.Context, id string) error {
	for i, record := range r.records {
		if record.ID == id {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return overtime.ErrOvertimeRecordNotFound
}

type fakePayslipRepo struct {
	payslips []payroll.Payslip
}

func (r *fakePayslipRepo) Create(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	r.payslips = append(r.payslips, p)
	return p, nil
}

func (r *fakePayslipRepo) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	for _, p := range r.payslips {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (r *fakePayslipRepo) GetForUpdate(ctx context.Context, id string) (payroll.Payslip, error) {
	return r.GetByID(ctx, id)
}

func (r *fakePayslipRepo) GetByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	for _, p := range r.payslips {
		if p.EmployeeID == employeeID && p.PeriodID == periodID {
			return p, nil
		}
	}
	return payroll.Payslip{}, payroll.ErrPayslipNotFound
}

func (r *fakePayslipRepo) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	return nil, nil
}

func (r *fakePayslipRepo) Update(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	return p, nil
}

func (r *fakePayslipRepo) CountUnpaidByPeriod(ctx context.Context, periodID string) (int, error) {
	return 0, nil
}

type fakePeriodRepo struct {
	periods []payroll.PayrollPeriod
}

func (r *fakePeriodRepo) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	for _, p := range r.periods {
		if p.ID == id {
			return p, nil
		}
	}
	return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
}

func (r *fakePeriodRepo) GetByYearMonth(ctx context.Context, year, month int) (payroll.PayrollPeriod, error) {
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
	p := payroll.PayrollPeriod{ID: "period-new", Year: year, Month: month}
	r.periods = append(r.periods, p)
	return p, nil
}

func (r *fakePeriodRepo) MarkCompleted(ctx context.Context, id string) error {
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
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
		result = append(result, e)
	}
	return result, nil
}

type overtimeFixture struct {
	overtimeRepo *fakeOvertimeRepo
	payslipRepo  *fakePayslipRepo
	periodRepo   *fakePeriodRepo
	service      overtime.OvertimeService
}

func newOvertimeFixture(t *testing.T) *overtimeFixture {
	t.Helper()
	overtimeRepo := &fakeOvertimeRepo{}
	payslipRepo := &fakePayslipRepo{}
	periodRepo := &fakePeriodRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:             "emp-1",
			FullName:       "Maria Quispe",
			EmploymentType: employee.EmploymentTypePayroll,
			PensionScheme:  employee.PensionSchemePrivateFund,
			HealthScheme:   employee.HealthSchemePublic,
			BaseSalary:     decimal.RequireFromString("3000"),
			IsActive:       true,
		},
	}}

	return &overtimeFixture{
		overtimeRepo: overtimeRepo,
		payslipRepo:  payslipRepo,
		periodRepo:   periodRepo,
		service:      NewOvertimeService(overtimeRepo, payslipRepo, periodRepo, employeeRepo),
	}
}

func TestOvertimeService_Add_TierRecord(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	result, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		Tier1Hours: decimal.NewFromInt(2),
		Tier2Hours: decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.ID)
	assert.Equal(t, "2026-03-10", result.Date)
	assert.False(t, result.IsHoliday)
	assert.True(t, decimal.NewFromInt(2).Equal(result.Tier1Hours))
}

func TestOvertimeService_Add_HolidayRecord(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	result, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID:   "emp-1",
		Date:         "2026-03-15",
		IsHoliday:    true,
		HolidayHours: decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, result.IsHoliday)
	assert.True(t, decimal.NewFromInt(4).Equal(result.HolidayHours))
	assert.True(t, result.Tier1Hours.IsZero())
}

func TestOvertimeService_Add_ConflictingKind(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	_, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID:   "emp-1",
		Date:         "2026-03-15",
		IsHoliday:    true,
		HolidayHours: decimal.NewFromInt(4),
		Tier1Hours:   decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, overtime.ErrConflictingOvertimeKind)
}

func TestOvertimeService_Add_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	cases := []struct {
		name string
		req  overtime.CreateOvertimeRequest
	}{
		{"bad date", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "15-03-2026", Tier1Hours: decimal.NewFromInt(1)}},
		{"date centuries past", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "1900-01-01", Tier1Hours: decimal.NewFromInt(2)}},
		{"date far future", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "2200-01-01", Tier1Hours: decimal.NewFromInt(2)}},
		{"negative hours", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "2026-03-15", Tier1Hours: decimal.NewFromInt(-1)}},
		{"holiday without hours", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "2026-03-15", IsHoliday: true}},
		{"no hours at all", overtime.CreateOvertimeRequest{EmployeeID: "emp-1", Date: "2026-03-15"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Add(ctx, tc.req)
			var validationErrs validator.ValidationErrors
			assert.ErrorAs(t, err, &validationErrs)
		})
	}
}

func TestOvertimeService_Add_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	_, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID: "nobody",
		Date:       "2026-03-10",
		Tier1Hours: decimal.NewFromInt(2),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestOvertimeService_Remove_NoPayslipYet(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	created, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		Tier1Hours: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	require.NoError(t, f.service.Remove(ctx, created.ID))

	_, err = f.overtimeRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, overtime.ErrOvertimeRecordNotFound)
}

func TestOvertimeService_Remove_PaidPeriodRejected(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	f.periodRepo.periods = append(f.periodRepo.periods, payroll.PayrollPeriod{ID: "period-1", Year: 2026, Month: 3})
	f.payslipRepo.payslips = append(f.payslipRepo.payslips, payroll.Payslip{
		ID:         "slip-1",
		EmployeeID: "emp-1",
		PeriodID:   "period-1",
		Status:     payroll.PayslipStatusPaid,
	})

	created, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		Tier1Hours: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	err = f.service.Remove(ctx, created.ID)
	assert.ErrorIs(t, err, overtime.ErrPayslipAlreadyPaid)

	// Record stays put.
	_, err = f.overtimeRepo.GetByID(ctx, created.ID)
	assert.NoError(t, err)
}

func TestOvertimeService_Remove_DraftPayslipAllowed(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	f.periodRepo.periods = append(f.periodRepo.periods, payroll.PayrollPeriod{ID: "period-1", Year: 2026, Month: 3})
	f.payslipRepo.payslips = append(f.payslipRepo.payslips, payroll.Payslip{
		ID:         "slip-1",
		EmployeeID: "emp-1",
		PeriodID:   "period-1",
		Status:     payroll.PayslipStatusDraft,
	})

	created, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-10",
		Tier1Hours: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	assert.NoError(t, f.service.Remove(ctx, created.ID))
}

func TestOvertimeService_ListForPeriod(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	dates := []string{"2026-03-01", "2026-03-31", "2026-04-01"}
	for _, d := range dates {
		_, err := f.service.Add(ctx, overtime.CreateOvertimeRequest{
			EmployeeID: "emp-1",
			Date:       d,
			Tier1Hours: decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	records, err := f.service.ListForPeriod(ctx, "emp-1", 2026, 3)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = f.service.ListForPeriod(ctx, "emp-1", 2026, 4)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestOvertimeService_ListForPeriod_InvalidMonth(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	_, err := f.service.ListForPeriod(ctx, "emp-1", 2026, 0)
	assert.Error(t, err)
}

func TestOvertimeService_Remove_NotFound(t *testing.T) {
	ctx := context.Background()
	f := newOvertimeFixture(t)

	err := f.service.Remove(ctx, "missing")
	assert.ErrorIs(t, err, overtime.ErrOvertimeRecordNotFound)
}
