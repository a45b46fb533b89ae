package payroll

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipAlreadyExists = errors.New("payslip already exists for this employee and period")
	ErrPeriodNotFound       = errors.New("payroll period not found")

	// State conflicts. Callers wrap these with the current status so the
	// client can re-read and retry.
	ErrPayslipAlreadyPaid = errors.New("payslip is already paid, cannot modify")
	ErrInvalidTransition  = errors.New("invalid payslip status transition")

	// Stale-write detection: the record changed between read and write.
	ErrStaleRecord = errors.New("payslip was modified concurrently, re-fetch and retry")

	// Calculation input validation
	ErrUnknownPensionScheme = errors.New("unknown pension scheme")
	ErrUnknownHealthScheme  = errors.New("unknown health scheme")
	ErrNegativeAdjustment   = errors.New("manual adjustments must not be negative")
	ErrOvertimeOutOfPeriod  = errors.New("overtime record is dated outside the payroll period")
)
