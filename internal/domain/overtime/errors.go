package overtime

import "errors"

var (
	ErrOvertimeRecordNotFound  = errors.New("overtime record not found")
	ErrConflictingOvertimeKind = errors.New("record cannot carry holiday hours and weekday overtime hours at the same time")
	ErrPayslipAlreadyPaid      = errors.New("payslip for this period is already paid")
)
