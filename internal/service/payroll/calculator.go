package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/domain/overtime"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
)

var (
	daysPerMonth = decimal.NewFromInt(30)
	hoursPerDay  = decimal.NewFromInt(8)
)

// Calculator turns compensation terms, overtime records and manual
// adjustments into a fully itemized payroll calculation. It is pure: no
// persistence, no clock, identical inputs always produce identical output.
type Calculator struct {
	rates payroll.StatutoryRates
}

func NewCalculator(rates payroll.StatutoryRates) *Calculator {
	return &Calculator{rates: rates}
}

func (c *Calculator) Calculate(
	emp employee.Employee,
	period payroll.PayrollPeriod,
	records []overtime.OvertimeRecord,
	manualBonuses, manualDeductions decimal.Decimal,
) (payroll.Calculation, error) {
	if emp.BaseSalary.IsNegative() {
		return payroll.Calculation{}, employee.ErrNegativeBaseSalary
	}
	if manualBonuses.IsNegative() || manualDeductions.IsNegative() {
		return payroll.Calculation{}, payroll.ErrNegativeAdjustment
	}

	start, end := period.Bounds()
	for _, r := range records {
		if r.Date.Before(start) || !r.Date.Before(end) {
			return payroll.Calculation{}, payroll.ErrOvertimeOutOfPeriod
		}
	}

	// Fixed 30-day, 8-hour-day convention for every employment type.
	hourlyRate := emp.BaseSalary.Div(daysPerMonth).Div(hoursPerDay)

	var tier1Hours, tier2Hours, holidayHours decimal.Decimal
	for _, r := range records {
		if r.IsHoliday {
			holidayHours = holidayHours.Add(r.HolidayHours)
		} else {
			tier1Hours = tier1Hours.Add(r.Tier1Hours)
			tier2Hours = tier2Hours.Add(r.Tier2Hours)
		}
	}

	// Each addition line is rounded before the lines are combined, matching
	// statutory rounding practice.
	tier1Pay := round2(tier1Hours.Mul(hourlyRate).Mul(c.rates.OvertimeTier1Multiplier))
	tier2Pay := round2(tier2Hours.Mul(hourlyRate).Mul(c.rates.OvertimeTier2Multiplier))
	holidayPay := round2(holidayHours.Mul(hourlyRate).Mul(c.rates.HolidayMultiplier))

	// Statutory gross: the base for every deduction and contribution rate.
	// Manual bonuses are layered on afterwards and only ever move net.
	statutoryGross := round2(emp.BaseSalary.Add(tier1Pay).Add(tier2Pay).Add(holidayPay))

	var pensionFund, fundCommission, fundInsurance, retention decimal.Decimal
	switch emp.EmploymentType {
	case employee.EmploymentTypePayroll:
		switch emp.PensionScheme {
		case employee.PensionSchemePrivateFund:
			pensionFund = round2(statutoryGross.Mul(c.rates.PrivateFundRate))
			fundCommission = round2(statutoryGross.Mul(c.rates.PrivateFundCommissionRate))
			fundInsurance = round2(statutoryGross.Mul(c.rates.PrivateFundInsuranceRate))
		case employee.PensionSchemePublicFund:
			pensionFund = round2(statutoryGross.Mul(c.rates.PublicFundRate))
		default:
			return payroll.Calculation{}, payroll.ErrUnknownPensionScheme
		}
	case employee.EmploymentTypeIndependent:
		retention = round2(statutoryGross.Mul(c.rates.IndependentRetentionRate))
	default:
		return payroll.Calculation{}, employee.ErrUnknownEmploymentType
	}

	employerHealth, err := c.employerHealth(emp, statutoryGross)
	if err != nil {
		return payroll.Calculation{}, err
	}

	statutoryDeductions := pensionFund.Add(fundCommission).Add(fundInsurance).Add(retention)

	grossSalary := statutoryGross.Add(manualBonuses)
	netSalary := round2(statutoryGross.Sub(statutoryDeductions)).
		Add(manualBonuses).
		Sub(manualDeductions)

	return payroll.Calculation{
		BasePay:          emp.BaseSalary,
		OvertimeTier1Pay: tier1Pay,
		OvertimeTier2Pay: tier2Pay,
		HolidayPay:       holidayPay,
		Bonuses:          manualBonuses,

		PensionFund:        pensionFund,
		FundCommission:     fundCommission,
		FundInsurance:      fundInsurance,
		IncomeTaxRetention: retention,
		OtherDeductions:    manualDeductions,

		GrossSalary:       grossSalary,
		TotalDeductions:   statutoryDeductions.Add(manualDeductions),
		NetSalary:         netSalary,
		EmployerHealth:    employerHealth,
		EmployerTotalCost: grossSalary.Add(employerHealth),
	}, nil
}

// employerHealth returns the employer-side health contribution on the
// statutory gross. Independent contractors carry no employer contribution.
func (c *Calculator) employerHealth(emp employee.Employee, statutoryGross decimal.Decimal) (decimal.Decimal, error) {
	if emp.EmploymentType == employee.EmploymentTypeIndependent {
		return decimal.Zero, nil
	}

	var rate decimal.Decimal
	switch emp.HealthScheme {
	case employee.HealthSchemePublic:
		rate = c.rates.HealthPublicRate
	case employee.HealthSchemePrivate:
		rate = c.rates.HealthPrivateRate
	case employee.HealthSchemePublicAndPrivate:
		rate = c.rates.HealthPublicAndPrivateRate
	case employee.HealthSchemeStateInsurance:
		rate = c.rates.HealthStateInsuranceRate
	case employee.HealthSchemeRiskWork:
		rate = c.rates.HealthRiskWorkRate
	default:
		return decimal.Zero, payroll.ErrUnknownHealthScheme
	}

	return round2(statutoryGross.Mul(rate)), nil
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
