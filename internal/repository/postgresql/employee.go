package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/victorsdou/payroll-backend-go/internal/domain/employee"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	var e employee.Employee
	err := q.QueryRow(ctx, `
		SELECT id, full_name, document_number, employment_type, pension_scheme, health_scheme,
		       base_salary, bank_name, bank_account, is_active, hire_date, created_at, updated_at
		FROM employees
		WHERE id = $1
	`, id).Scan(
		&e.ID, &e.FullName, &e.DocumentNumber, &e.EmploymentType, &e.PensionScheme, &e.HealthScheme,
		&e.BaseSalary, &e.BankName, &e.BankAccount, &e.IsActive, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, full_name, document_number, employment_type, pension_scheme, health_scheme,
		       base_salary, bank_name, bank_account, is_active, hire_date, created_at, updated_at
		FROM employees
		WHERE is_active = TRUE
		ORDER BY full_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.FullName, &e.DocumentNumber, &e.EmploymentType, &e.PensionScheme, &e.HealthScheme,
			&e.BaseSalary, &e.BankName, &e.BankAccount, &e.IsActive, &e.HireDate, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}

	return employees, nil
}
