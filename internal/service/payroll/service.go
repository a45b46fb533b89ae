package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	tx           payroll.TxManager
	payslipRepo  payroll.PayslipRepository
	periodRepo   payroll.PeriodRepository
	overtimeRepo overtime.OvertimeRepository
	employeeRepo employee.EmployeeRepository
	calculator   *Calculator
}

func NewPayrollService(
	tx payroll.TxManager,
	payslipRepo payroll.PayslipRepository,
	periodRepo payroll.PeriodRepository,
	overtimeRepo overtime.OvertimeRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		tx:           tx,
		payslipRepo:  payslipRepo,
		periodRepo:   periodRepo,
		overtimeRepo: overtimeRepo,
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

// GetOrCreate returns the payslip for (employee, period), creating a DRAFT
// with an initial calculation on first access. Idempotent: concurrent callers
// for the same pair converge on the same record.
func (s *PayrollServiceImpl) GetOrCreate(ctx context.Context, employeeID, periodID string) (payroll.PayslipResponse, error) {
	existing, err := s.payslipRepo.GetByEmployeePeriod(ctx, employeeID, periodID)
	if err == nil {
		return mapToPayslipResponse(existing), nil
	}
	if !errors.Is(err, payroll.ErrPayslipNotFound) {
		return payroll.PayslipResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	start, end := period.Bounds()
	records, err := s.overtimeRepo.ListForRange(ctx, employeeID, start, end)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	calc, err := s.calculator.Calculate(emp, period, records, decimal.Zero, decimal.Zero)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	payslip := payroll.Payslip{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		PeriodID:   periodID,
		Status:     payroll.PayslipStatusDraft,
	}
	applyCalculation(&payslip, calc)

	created, err := s.payslipRepo.Create(ctx, payslip)
	if err != nil {
		// Lost a creation race: the winner's record is the truth.
		if errors.Is(err, payroll.ErrPayslipAlreadyExists) {
			existing, getErr := s.payslipRepo.GetByEmployeePeriod(ctx, employeeID, periodID)
			if getErr != nil {
				return payroll.PayslipResponse{}, getErr
			}
			return mapToPayslipResponse(existing), nil
		}
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(created), nil
}

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	payslip, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return mapToPayslipResponse(payslip), nil
}

func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, year, month int) ([]payroll.PayslipResponse, error) {
	period, err := s.periodRepo.GetByYearMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.ListByPeriod(ctx, period.ID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		result = append(result, mapToPayslipResponse(p))
	}
	return result, nil
}

// Recalculate re-runs the calculation with current overtime data while
// preserving the stored manual adjustments, notes and status.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	var updated payroll.Payslip
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payslip, err := s.payslipRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if payslip.Status == payroll.PayslipStatusPaid {
			return fmt.Errorf("%w (status %s)", payroll.ErrPayslipAlreadyPaid, payslip.Status)
		}

		updated, err = s.recalculateLocked(ctx, payslip)
		return err
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(updated), nil
}

// SetManualAdjustments persists the operator-entered bonus/deduction/notes
// and immediately recalculates so derived totals reflect them. Nil fields are
// left untouched.
func (s *PayrollServiceImpl) SetManualAdjustments(ctx context.Context, req payroll.SetAdjustmentsRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	var updated payroll.Payslip
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payslip, err := s.payslipRepo.GetForUpdate(ctx, req.ID)
		if err != nil {
			return err
		}
		if payslip.Status == payroll.PayslipStatusPaid {
			return fmt.Errorf("%w (status %s)", payroll.ErrPayslipAlreadyPaid, payslip.Status)
		}

		if req.ManualBonuses != nil {
			payslip.ManualBonuses = *req.ManualBonuses
		}
		if req.ManualDeductions != nil {
			payslip.ManualDeductions = *req.ManualDeductions
		}
		if req.Notes != nil {
			payslip.Notes = req.Notes
		}

		updated, err = s.recalculateLocked(ctx, payslip)
		return err
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(updated), nil
}

func (s *PayrollServiceImpl) Confirm(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	return s.transition(ctx, id, payroll.PayslipStatusDraft, func(p *payroll.Payslip) {
		now := time.Now().UTC()
		p.Status = payroll.PayslipStatusConfirmed
		p.ConfirmedAt = &now
	})
}

// Unconfirm reverts a confirmed payslip to DRAFT so an operator can fix it
// without rebuilding the record from scratch.
func (s *PayrollServiceImpl) Unconfirm(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	return s.transition(ctx, id, payroll.PayslipStatusConfirmed, func(p *payroll.Payslip) {
		p.Status = payroll.PayslipStatusDraft
		p.ConfirmedAt = nil
	})
}

// Pay moves CONFIRMED to PAID. Draft payslips cannot be paid directly;
// confirmation is a mandatory review step. When the last payslip of the
// period is paid, the period is marked completed.
func (s *PayrollServiceImpl) Pay(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	var updated payroll.Payslip
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payslip, err := s.payslipRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if payslip.Status != payroll.PayslipStatusConfirmed {
			return fmt.Errorf("%w: cannot pay a %s payslip", payroll.ErrInvalidTransition, payslip.Status)
		}

		now := time.Now().UTC()
		payslip.Status = payroll.PayslipStatusPaid
		payslip.PaidAt = &now

		updated, err = s.payslipRepo.Update(ctx, payslip)
		if err != nil {
			return err
		}

		unpaid, err := s.payslipRepo.CountUnpaidByPeriod(ctx, payslip.PeriodID)
		if err != nil {
			return err
		}
		if unpaid == 0 {
			return s.periodRepo.MarkCompleted(ctx, payslip.PeriodID)
		}
		return nil
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(updated), nil
}

// recalculateLocked recomputes the monetary fields of an already-locked
// payslip against current employee terms and overtime data, then writes it.
func (s *PayrollServiceImpl) recalculateLocked(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	emp, err := s.employeeRepo.GetByID(ctx, payslip.EmployeeID)
	if err != nil {
		return payroll.Payslip{}, err
	}
	period, err := s.periodRepo.GetByID(ctx, payslip.PeriodID)
	if err != nil {
		return payroll.Payslip{}, err
	}

	start, end := period.Bounds()
	records, err := s.overtimeRepo.ListForRange(ctx, payslip.EmployeeID, start, end)
	if err != nil {
		return payroll.Payslip{}, err
	}

	calc, err := s.calculator.Calculate(emp, period, records, payslip.ManualBonuses, payslip.ManualDeductions)
	if err != nil {
		return payroll.Payslip{}, err
	}

	applyCalculation(&payslip, calc)
	return s.payslipRepo.Update(ctx, payslip)
}

func (s *PayrollServiceImpl) transition(
	ctx context.Context,
	id string,
	from payroll.PayslipStatus,
	apply func(*payroll.Payslip),
) (payroll.PayslipResponse, error) {
	var updated payroll.Payslip
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		payslip, err := s.payslipRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if payslip.Status != from {
			return fmt.Errorf("%w: expected %s, payslip is %s", payroll.ErrInvalidTransition, from, payslip.Status)
		}

		apply(&payslip)
		updated, err = s.payslipRepo.Update(ctx, payslip)
		return err
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return mapToPayslipResponse(updated), nil
}

// applyCalculation copies the engine output onto the payslip, leaving the
// manual adjustments, notes, status and audit fields alone.
func applyCalculation(p *payroll.Payslip, calc payroll.Calculation) {
	p.BasePay = calc.BasePay
	p.OvertimeTier1Pay = calc.OvertimeTier1Pay
	p.OvertimeTier2Pay = calc.OvertimeTier2Pay
	p.HolidayPay = calc.HolidayPay
	p.Bonuses = calc.Bonuses

	p.PensionFund = calc.PensionFund
	p.FundCommission = calc.FundCommission
	p.FundInsurance = calc.FundInsurance
	p.IncomeTaxRetention = calc.IncomeTaxRetention
	p.OtherDeductions = calc.OtherDeductions

	p.GrossSalary = calc.GrossSalary
	p.TotalDeductions = calc.TotalDeductions
	p.NetSalary = calc.NetSalary
	p.EmployerHealth = calc.EmployerHealth
	p.EmployerTotalCost = calc.EmployerTotalCost
}

func mapToPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	var confirmedAt, paidAt *string
	if p.ConfirmedAt != nil {
		str := p.ConfirmedAt.Format(time.RFC3339)
		confirmedAt = &str
	}
	if p.PaidAt != nil {
		str := p.PaidAt.Format(time.RFC3339)
		paidAt = &str
	}

	employeeName := ""
	employeeDocument := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}
	if p.EmployeeDocument != nil {
		employeeDocument = *p.EmployeeDocument
	}

	return payroll.PayslipResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		EmployeeName:     employeeName,
		EmployeeDocument: employeeDocument,
		PeriodID:         p.PeriodID,
		Status:           string(p.Status),
		Additions: payroll.PayslipAdditions{
			BasePay:          p.BasePay,
			OvertimeTier1Pay: p.OvertimeTier1Pay,
			OvertimeTier2Pay: p.OvertimeTier2Pay,
			HolidayPay:       p.HolidayPay,
			Bonuses:          p.Bonuses,
		},
		Deductions: payroll.PayslipDeductions{
			PensionFund:        p.PensionFund,
			FundCommission:     p.FundCommission,
			FundInsurance:      p.FundInsurance,
			IncomeTaxRetention: p.IncomeTaxRetention,
			OtherDeductions:    p.OtherDeductions,
		},
		GrossSalary:       p.GrossSalary,
		TotalDeductions:   p.TotalDeductions,
		NetSalary:         p.NetSalary,
		EmployerHealth:    p.EmployerHealth,
		EmployerTotalCost: p.EmployerTotalCost,
		ManualBonuses:     p.ManualBonuses,
		ManualDeductions:  p.ManualDeductions,
		Notes:             p.Notes,
		ConfirmedAt:       confirmedAt,
		PaidAt:            paidAt,
		Version:           p.Version,
	}
}
