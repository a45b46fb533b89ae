package overtime

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/victorsdou/payroll-backend-go/internal/pkg/validator"
)

// Records dated before any payroll period existed, or far in the future,
// would never surface in a payslip; reject them at the door.
const minOvertimeYear = 2000

type CreateOvertimeRequest struct {
	EmployeeID   string          `json:"-"`
	Date         string          `json:"date"`
	IsHoliday    bool            `json:"is_holiday"`
	HolidayHours decimal.Decimal `json:"holiday_hours"`
	Tier1Hours   decimal.Decimal `json:"tier1_hours"`
	Tier2Hours   decimal.Decimal `json:"tier2_hours"`
	Note         *string         `json:"note,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if date, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"})
	} else if date.Year() < minOvertimeYear || date.Year() > time.Now().Year()+1 {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must fall within a plausible payroll period"})
	}
	if r.HolidayHours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "holiday_hours", Message: "must be non-negative"})
	}
	if r.Tier1Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tier1_hours", Message: "must be non-negative"})
	}
	if r.Tier2Hours.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "tier2_hours", Message: "must be non-negative"})
	}
	if r.IsHoliday && r.HolidayHours.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "holiday_hours", Message: "is required for a holiday record"})
	}
	if !r.IsHoliday && r.Tier1Hours.IsZero() && r.Tier2Hours.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "tier1_hours", Message: "at least one overtime tier is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type OvertimeRecordResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	Date         string          `json:"date"`
	IsHoliday    bool            `json:"is_holiday"`
	HolidayHours decimal.Decimal `json:"holiday_hours"`
	Tier1Hours   decimal.Decimal `json:"tier1_hours"`
	Tier2Hours   decimal.Decimal `json:"tier2_hours"`
	Note         *string         `json:"note,omitempty"`
}
