package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/victorsdou/payroll-backend-go/internal/pkg/validator"
)

// ========== PAYSLIP DTOs ==========

type PayslipResponse struct {
	ID               string `json:"id"`
	EmployeeID       string `json:"employee_id"`
	EmployeeName     string `json:"employee_name,omitempty"`
	EmployeeDocument string `json:"employee_document,omitempty"`
	PeriodID         string `json:"period_id"`
	Status           string `json:"status"`

	Additions  PayslipAdditions  `json:"additions"`
	Deductions PayslipDeductions `json:"deductions"`

	GrossSalary       decimal.Decimal `json:"gross_salary"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	NetSalary         decimal.Decimal `json:"net_salary"`
	EmployerHealth    decimal.Decimal `json:"employer_health"`
	EmployerTotalCost decimal.Decimal `json:"employer_total_cost"`

	ManualBonuses    decimal.Decimal `json:"manual_bonuses"`
	ManualDeductions decimal.Decimal `json:"manual_deductions"`
	Notes            *string         `json:"notes,omitempty"`

	ConfirmedAt *string `json:"confirmed_at,omitempty"`
	PaidAt      *string `json:"paid_at,omitempty"`
	Version     int     `json:"version"`
}

type PayslipAdditions struct {
	BasePay          decimal.Decimal `json:"base_pay"`
	OvertimeTier1Pay decimal.Decimal `json:"overtime_tier1_pay"`
	OvertimeTier2Pay decimal.Decimal `json:"overtime_tier2_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	Bonuses          decimal.Decimal `json:"bonuses"`
}

type PayslipDeductions struct {
	PensionFund        decimal.Decimal `json:"pension_fund"`
	FundCommission     decimal.Decimal `json:"fund_commission"`
	FundInsurance      decimal.Decimal `json:"fund_insurance"`
	IncomeTaxRetention decimal.Decimal `json:"income_tax_retention"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
}

type SetAdjustmentsRequest struct {
	ID               string           `json:"-"`
	ManualBonuses    *decimal.Decimal `json:"manual_bonuses,omitempty"`
	ManualDeductions *decimal.Decimal `json:"manual_deductions,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

func (r *SetAdjustmentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ManualBonuses != nil && r.ManualBonuses.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "manual_bonuses", Message: "must be non-negative"})
	}
	if r.ManualDeductions != nil && r.ManualDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "manual_deductions", Message: "must be non-negative"})
	}

	// Monetary amounts carry at most cents; finer precision would flow into
	// gross and net unrounded.
	if r.ManualBonuses != nil && !r.ManualBonuses.Equal(r.ManualBonuses.Round(2)) {
		errs = append(errs, validator.ValidationError{Field: "manual_bonuses", Message: "must have at most 2 decimal places"})
	}
	if r.ManualDeductions != nil && !r.ManualDeductions.Equal(r.ManualDeductions.Round(2)) {
		errs = append(errs, validator.ValidationError{Field: "manual_deductions", Message: "must have at most 2 decimal places"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== PERIOD DTOs ==========

type ProcessPeriodRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *ProcessPeriodRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PeriodResponse struct {
	ID          string  `json:"id"`
	Year        int     `json:"year"`
	Month       int     `json:"month"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

// ProcessReport is the outcome of a period batch run. Partial success is the
// normal case: failures for individual employees never abort the batch.
type ProcessReport struct {
	Period   PeriodResponse    `json:"period"`
	Payslips []PayslipResponse `json:"payslips"`
	Skipped  []SkippedPayslip  `json:"skipped,omitempty"`
	Errors   []ProcessError    `json:"errors,omitempty"`
}

// SkippedPayslip reports a paid payslip the batch left untouched.
type SkippedPayslip struct {
	EmployeeID string `json:"employee_id"`
	PayslipID  string `json:"payslip_id"`
	Reason     string `json:"reason"`
}

type ProcessError struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}
