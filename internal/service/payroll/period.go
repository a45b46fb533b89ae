package payroll

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
)

const defaultWorkers = 8

type PeriodServiceImpl struct {
	periodRepo     payroll.PeriodRepository
	payslipRepo    payroll.PayslipRepository
	employeeRepo   employee.EmployeeRepository
	payrollService payroll.PayrollService
	workers        int
}

func NewPeriodService(
	periodRepo payroll.PeriodRepository,
	payslipRepo payroll.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	payrollService payroll.PayrollService,
	workers int,
) payroll.PeriodService {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &PeriodServiceImpl{
		periodRepo:     periodRepo,
		payslipRepo:    payslipRepo,
		employeeRepo:   employeeRepo,
		payrollService: payrollService,
		workers:        workers,
	}
}

// ProcessPeriod runs the batch calculation for one calendar month. Employees
// are processed independently on a bounded worker pool; a failure for one is
// collected and reported, never aborting the rest. Paid payslips are skipped
// and reported untouched.
func (s *PeriodServiceImpl) ProcessPeriod(ctx context.Context, year, month int) (payroll.ProcessReport, error) {
	req := payroll.ProcessPeriodRequest{Year: year, Month: month}
	if err := req.Validate(); err != nil {
		return payroll.ProcessReport{}, err
	}

	period, err := s.periodRepo.GetOrCreate(ctx, year, month)
	if err != nil {
		return payroll.ProcessReport{}, err
	}

	employees, err := s.employeeRepo.GetActive(ctx)
	if err != nil {
		return payroll.ProcessReport{}, err
	}

	var (
		mu      sync.Mutex
		report  payroll.ProcessReport
		g, gctx = errgroup.WithContext(ctx)
	)
	g.SetLimit(s.workers)

	for _, emp := range employees {
		emp := emp
		g.Go(func() error {
			result, skipped, err := s.processEmployee(gctx, emp.ID, period)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				report.Errors = append(report.Errors, payroll.ProcessError{
					EmployeeID: emp.ID,
					Error:      err.Error(),
				})
			case skipped != nil:
				report.Skipped = append(report.Skipped, *skipped)
			default:
				report.Payslips = append(report.Payslips, result)
			}
			return nil
		})
	}

	// Workers never return errors; they report per-employee.
	_ = g.Wait()

	sort.Slice(report.Payslips, func(i, j int) bool { return report.Payslips[i].EmployeeID < report.Payslips[j].EmployeeID })
	sort.Slice(report.Skipped, func(i, j int) bool { return report.Skipped[i].EmployeeID < report.Skipped[j].EmployeeID })
	sort.Slice(report.Errors, func(i, j int) bool { return report.Errors[i].EmployeeID < report.Errors[j].EmployeeID })

	report.Period = mapToPeriodResponse(period)

	slog.Info("payroll period processed",
		"year", year,
		"month", month,
		"payslips", len(report.Payslips),
		"skipped", len(report.Skipped),
		"errors", len(report.Errors),
	)

	return report, nil
}

func (s *PeriodServiceImpl) processEmployee(
	ctx context.Context,
	employeeID string,
	period payroll.PayrollPeriod,
) (payroll.PayslipResponse, *payroll.SkippedPayslip, error) {
	existing, err := s.payslipRepo.GetByEmployeePeriod(ctx, employeeID, period.ID)
	if err != nil && !errors.Is(err, payroll.ErrPayslipNotFound) {
		return payroll.PayslipResponse{}, nil, err
	}
	if err == nil && existing.Status == payroll.PayslipStatusPaid {
		return payroll.PayslipResponse{}, &payroll.SkippedPayslip{
			EmployeeID: employeeID,
			PayslipID:  existing.ID,
			Reason:     "already paid",
		}, nil
	}

	created, err := s.payrollService.GetOrCreate(ctx, employeeID, period.ID)
	if err != nil {
		return payroll.PayslipResponse{}, nil, err
	}

	recalculated, err := s.payrollService.Recalculate(ctx, created.ID)
	if err != nil {
		return payroll.PayslipResponse{}, nil, err
	}

	return recalculated, nil, nil
}

func mapToPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	var completedAt *string
	if p.CompletedAt != nil {
		str := p.CompletedAt.Format(time.RFC3339)
		completedAt = &str
	}
	return payroll.PeriodResponse{
		ID:          p.ID,
		Year:        p.Year,
		Month:       p.Month,
		CompletedAt: completedAt,
	}
}
