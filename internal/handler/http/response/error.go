package response

import (
	"errors"
	"net/http"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNegativeBaseSalary):
		BadRequest(w, "Employee base salary is negative", nil)
	case errors.Is(err, employee.ErrUnknownEmploymentType):
		BadRequest(w, "Unknown employment type", nil)

	// Overtime domain errors
	case errors.Is(err, overtime.ErrOvertimeRecordNotFound):
		NotFound(w, "Overtime record not found")
	case errors.Is(err, overtime.ErrConflictingOvertimeKind):
		Conflict(w, "Overtime record cannot mix holiday and tiered hours")
	case errors.Is(err, overtime.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip for the overtime period is already paid")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this employee and period")
	case errors.Is(err, payroll.ErrPayslipAlreadyPaid):
		Conflict(w, "Payslip is already paid")
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrStaleRecord):
		Conflict(w, "Payslip was modified by another request, retry")
	case errors.Is(err, payroll.ErrNegativeAdjustment):
		BadRequest(w, "Manual adjustments must not be negative", nil)
	case errors.Is(err, payroll.ErrOvertimeOutOfPeriod):
		BadRequest(w, "Overtime record falls outside the payroll period", nil)
	case errors.Is(err, payroll.ErrUnknownPensionScheme):
		BadRequest(w, "Unknown pension scheme", nil)
	case errors.Is(err, payroll.ErrUnknownHealthScheme):
		BadRequest(w, "Unknown health scheme", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
