package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "DRAFT"
	PayslipStatusConfirmed PayslipStatus = "CONFIRMED"
	PayslipStatusPaid      PayslipStatus = "PAID"
)

// PayrollPeriod - one calendar month of payroll, unique per (year, month).
// Created lazily on first access, never deleted. CompletedAt is stamped when
// every payslip in the period has been paid.
type PayrollPeriod struct {
	ID          string
	Year        int
	Month       int
	CompletedAt *time.Time
	CreatedAt   time.Time
}

// Bounds returns the half-open calendar range [start, end) of the period in UTC.
func (p PayrollPeriod) Bounds() (time.Time, time.Time) {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// Payslip - the persisted result of a payroll calculation plus its lifecycle
// state. Monetary fields other than the manual adjustments are overwritten on
// every recalculation; ManualBonuses, ManualDeductions and Notes survive it.
type Payslip struct {
	ID         string
	EmployeeID string
	PeriodID   string
	Status     PayslipStatus

	// Additions
	BasePay          decimal.Decimal
	OvertimeTier1Pay decimal.Decimal
	OvertimeTier2Pay decimal.Decimal
	HolidayPay       decimal.Decimal
	Bonuses          decimal.Decimal

	// Deductions
	PensionFund        decimal.Decimal
	FundCommission     decimal.Decimal
	FundInsurance      decimal.Decimal
	IncomeTaxRetention decimal.Decimal
	OtherDeductions    decimal.Decimal

	GrossSalary       decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetSalary         decimal.Decimal
	EmployerHealth    decimal.Decimal
	EmployerTotalCost decimal.Decimal

	ManualBonuses    decimal.Decimal
	ManualDeductions decimal.Decimal
	Notes            *string

	ConfirmedAt *time.Time
	PaidAt      *time.Time

	// Version guards concurrent writers. Updates carry the version they read;
	// a mismatch on write surfaces ErrStaleRecord.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName     *string
	EmployeeDocument *string
}

// Calculation is the value object returned by the calculation engine. It is
// never persisted directly; the lifecycle manager copies it onto a Payslip.
type Calculation struct {
	BasePay          decimal.Decimal
	OvertimeTier1Pay decimal.Decimal
	OvertimeTier2Pay decimal.Decimal
	HolidayPay       decimal.Decimal
	Bonuses          decimal.Decimal

	PensionFund        decimal.Decimal
	FundCommission     decimal.Decimal
	FundInsurance      decimal.Decimal
	IncomeTaxRetention decimal.Decimal
	OtherDeductions    decimal.Decimal

	GrossSalary       decimal.Decimal
	TotalDeductions   decimal.Decimal
	NetSalary         decimal.Decimal
	EmployerHealth    decimal.Decimal
	EmployerTotalCost decimal.Decimal
}
