package employee

import "errors"

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrNegativeBaseSalary    = errors.New("base salary must not be negative")
	ErrUnknownEmploymentType = errors.New("unknown employment type")
)
