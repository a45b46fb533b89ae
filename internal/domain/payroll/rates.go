package payroll

import "github.com/shopspring/decimal"

// StatutoryRates is the versioned constant table the calculation engine runs
// against. Pure data: rate selection logic lives in the engine so that scheme
// handling stays an exhaustive switch in one place.
type StatutoryRates struct {
	// Pension, payroll employees
	PrivateFundRate           decimal.Decimal // contribution, % of gross
	PrivateFundCommissionRate decimal.Decimal // fund management commission, % of gross
	PrivateFundInsuranceRate  decimal.Decimal // fund insurance premium, % of gross
	PublicFundRate            decimal.Decimal // single public-fund line, % of gross

	// Independent contractors: flat income-tax retention, % of gross
	IndependentRetentionRate decimal.Decimal

	// Pay multipliers
	OvertimeTier1Multiplier decimal.Decimal // first two extra hours per day
	OvertimeTier2Multiplier decimal.Decimal // hours beyond the first two
	HolidayMultiplier       decimal.Decimal

	// Employer health contribution, % of gross, keyed by health scheme
	HealthPublicRate           decimal.Decimal
	HealthPrivateRate          decimal.Decimal
	HealthPublicAndPrivateRate decimal.Decimal
	HealthStateInsuranceRate   decimal.Decimal
	HealthRiskWorkRate         decimal.Decimal
}

// DefaultRates returns the current statutory table. Values should be reviewed
// annually; the env config can override the pension-fund lines.
func DefaultRates() StatutoryRates {
	return StatutoryRates{
		PrivateFundRate:           decimal.RequireFromString("0.10"),
		PrivateFundCommissionRate: decimal.RequireFromString("0.0155"),
		PrivateFundInsuranceRate:  decimal.RequireFromString("0.0174"),
		PublicFundRate:            decimal.RequireFromString("0.13"),

		IndependentRetentionRate: decimal.RequireFromString("0.08"),

		OvertimeTier1Multiplier: decimal.RequireFromString("1.25"),
		OvertimeTier2Multiplier: decimal.RequireFromString("1.35"),
		HolidayMultiplier:       decimal.RequireFromString("2.00"),

		HealthPublicRate:           decimal.RequireFromString("0.09"),
		HealthPrivateRate:          decimal.RequireFromString("0.0675"),
		HealthPublicAndPrivateRate: decimal.RequireFromString("0.09"),
		// State-subsidised scheme carries no employer payroll percentage.
		HealthStateInsuranceRate: decimal.Zero,
		// Public rate plus the risk-work surcharge.
		HealthRiskWorkRate: decimal.RequireFromString("0.1023"),
	}
}
