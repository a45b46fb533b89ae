package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the read-only registry view consumed by the payroll engine.
// Master-data management (names, documents, bank details) lives elsewhere;
// this engine never writes employee rows.
type Employee struct {
	ID             string
	FullName       string
	DocumentNumber string
	EmploymentType EmploymentType
	PensionScheme  PensionScheme
	HealthScheme   HealthScheme
	BaseSalary     decimal.Decimal
	BankName       *string
	BankAccount    *string
	IsActive       bool
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type EmploymentType string

const (
	EmploymentTypePayroll     EmploymentType = "PAYROLL"
	EmploymentTypeIndependent EmploymentType = "INDEPENDENT"
)

// PensionScheme is meaningful only for EmploymentTypePayroll.
type PensionScheme string

const (
	PensionSchemePrivateFund PensionScheme = "PRIVATE_FUND"
	PensionSchemePublicFund  PensionScheme = "PUBLIC_FUND"
)

type HealthScheme string

const (
	HealthSchemePublic           HealthScheme = "PUBLIC"
	HealthSchemePrivate          HealthScheme = "PRIVATE"
	HealthSchemePublicAndPrivate HealthScheme = "PUBLIC_AND_PRIVATE"
	HealthSchemeStateInsurance   HealthScheme = "STATE_INSURANCE"
	HealthSchemeRiskWork         HealthScheme = "RISK_WORK"
)
