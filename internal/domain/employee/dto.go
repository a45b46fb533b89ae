package employee

import "github.com/shopspring/decimal"

type EmployeeResponse struct {
	ID             string          `json:"id"`
	FullName       string          `json:"full_name"`
	DocumentNumber string          `json:"document_number"`
	EmploymentType string          `json:"employment_type"`
	PensionScheme  string          `json:"pension_scheme,omitempty"`
	HealthScheme   string          `json:"health_scheme"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
	HireDate       string          `json:"hire_date"`
}
