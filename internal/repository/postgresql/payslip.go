package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payroll.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	p.id, p.employee_id, p.period_id, p.status,
	p.base_pay, p.overtime_tier1_pay, p.overtime_tier2_pay, p.holiday_pay, p.bonuses,
	p.pension_fund, p.fund_commission, p.fund_insurance, p.income_tax_retention, p.other_deductions,
	p.gross_salary, p.total_deductions, p.net_salary, p.employer_health, p.employer_total_cost,
	p.manual_bonuses, p.manual_deductions, p.notes,
	p.confirmed_at, p.paid_at, p.version, p.created_at, p.updated_at`

func scanPayslip(row pgx.Row) (payroll.Payslip, error) {
	var p payroll.Payslip
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.PeriodID, &p.Status,
		&p.BasePay, &p.OvertimeTier1Pay, &p.OvertimeTier2Pay, &p.HolidayPay, &p.Bonuses,
		&p.PensionFund, &p.FundCommission, &p.FundInsurance, &p.IncomeTaxRetention, &p.OtherDeductions,
		&p.GrossSalary, &p.TotalDeductions, &p.NetSalary, &p.EmployerHealth, &p.EmployerTotalCost,
		&p.ManualBonuses, &p.ManualDeductions, &p.Notes,
		&p.ConfirmedAt, &p.PaidAt, &p.Version, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *payslipRepository) Create(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, period_id, status,
			base_pay, overtime_tier1_pay, overtime_tier2_pay, holiday_pay, bonuses,
			pension_fund, fund_commission, fund_insurance, income_tax_retention, other_deductions,
			gross_salary, total_deductions, net_salary, employer_health, employer_total_cost,
			manual_bonuses, manual_deductions, notes
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19,
			$20, $21, $22
		)
		RETURNING ` + strings.ReplaceAll(payslipColumns, "p.", "") + `
	`

	created, err := scanPayslip(q.QueryRow(ctx, query,
		payslip.ID, payslip.EmployeeID, payslip.PeriodID, payslip.Status,
		payslip.BasePay, payslip.OvertimeTier1Pay, payslip.OvertimeTier2Pay, payslip.HolidayPay, payslip.Bonuses,
		payslip.PensionFund, payslip.FundCommission, payslip.FundInsurance, payslip.IncomeTaxRetention, payslip.OtherDeductions,
		payslip.GrossSalary, payslip.TotalDeductions, payslip.NetSalary, payslip.EmployerHealth, payslip.EmployerTotalCost,
		payslip.ManualBonuses, payslip.ManualDeductions, payslip.Notes,
	))
	if err != nil {
		if strings.Contains(err.Error(), "uq_payslip_employee_period") {
			return payroll.Payslip{}, payroll.ErrPayslipAlreadyExists
		}
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `, e.full_name, e.document_number
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payslip
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.PeriodID, &p.Status,
		&p.BasePay, &p.OvertimeTier1Pay, &p.OvertimeTier2Pay, &p.HolidayPay, &p.Bonuses,
		&p.PensionFund, &p.FundCommission, &p.FundInsurance, &p.IncomeTaxRetention, &p.OtherDeductions,
		&p.GrossSalary, &p.TotalDeductions, &p.NetSalary, &p.EmployerHealth, &p.EmployerTotalCost,
		&p.ManualBonuses, &p.ManualDeductions, &p.Notes,
		&p.ConfirmedAt, &p.PaidAt, &p.Version, &p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName, &p.EmployeeDocument,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

// GetForUpdate locks the payslip row for the duration of the surrounding
// transaction, serializing concurrent mutation per payslip id.
func (r *payslipRepository) GetForUpdate(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		WHERE p.id = $1
		FOR UPDATE
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to lock payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByEmployeePeriod(ctx context.Context, employeeID, periodID string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `
		FROM payslips p
		WHERE p.employee_id = $1 AND p.period_id = $2
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, employeeID, periodID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip by employee and period: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) ListByPeriod(ctx context.Context, periodID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `, e.full_name, e.document_number
		FROM payslips p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.period_id = $1
		ORDER BY e.full_name
	`

	rows, err := q.Query(ctx, query, periodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.PeriodID, &p.Status,
			&p.BasePay, &p.OvertimeTier1Pay, &p.OvertimeTier2Pay, &p.HolidayPay, &p.Bonuses,
			&p.PensionFund, &p.FundCommission, &p.FundInsurance, &p.IncomeTaxRetention, &p.OtherDeductions,
			&p.GrossSalary, &p.TotalDeductions, &p.NetSalary, &p.EmployerHealth, &p.EmployerTotalCost,
			&p.ManualBonuses, &p.ManualDeductions, &p.Notes,
			&p.ConfirmedAt, &p.PaidAt, &p.Version, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName, &p.EmployeeDocument,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, nil
}

func (r *payslipRepository) Update(ctx context.Context, payslip payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips SET
			status = $3,
			base_pay = $4, overtime_tier1_pay = $5, overtime_tier2_pay = $6, holiday_pay = $7, bonuses = $8,
			pension_fund = $9, fund_commission = $10, fund_insurance = $11, income_tax_retention = $12, other_deductions = $13,
			gross_salary = $14, total_deductions = $15, net_salary = $16, employer_health = $17, employer_total_cost = $18,
			manual_bonuses = $19, manual_deductions = $20, notes = $21,
			confirmed_at = $22, paid_at = $23,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING ` + strings.ReplaceAll(payslipColumns, "p.", "") + `
	`

	updated, err := scanPayslip(q.QueryRow(ctx, query,
		payslip.ID, payslip.Version, payslip.Status,
		payslip.BasePay, payslip.OvertimeTier1Pay, payslip.OvertimeTier2Pay, payslip.HolidayPay, payslip.Bonuses,
		payslip.PensionFund, payslip.FundCommission, payslip.FundInsurance, payslip.IncomeTaxRetention, payslip.OtherDeductions,
		payslip.GrossSalary, payslip.TotalDeductions, payslip.NetSalary, payslip.EmployerHealth, payslip.EmployerTotalCost,
		payslip.ManualBonuses, payslip.ManualDeductions, payslip.Notes,
		payslip.ConfirmedAt, payslip.PaidAt,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			// Either the row is gone or someone else wrote it first.
			if _, getErr := r.GetByID(ctx, payslip.ID); getErr != nil {
				return payroll.Payslip{}, getErr
			}
			return payroll.Payslip{}, payroll.ErrStaleRecord
		}
		return payroll.Payslip{}, fmt.Errorf("failed to update payslip: %w", err)
	}

	return updated, nil
}

func (r *payslipRepository) CountUnpaidByPeriod(ctx context.Context, periodID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `
		SELECT COUNT(*) FROM payslips WHERE period_id = $1 AND status <> 'PAID'
	`, periodID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unpaid payslips: %w", err)
	}

	return count, nil
}
