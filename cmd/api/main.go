package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/victorsdou/payroll-backend-go/internal/config"
	"github.com/victorsdou/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/victorsdou/payroll-backend-go/internal/handler/http"
	"github.com/victorsdou/payroll-backend-go/internal/pkg/database"
	"github.com/victorsdou/payroll-backend-go/internal/repository/postgresql"
	employeeService "github.com/victorsdou/payroll-backend-go/internal/service/employee"
	overtimeService "github.com/victorsdou/payroll-backend-go/internal/service/overtime"
	payrollService "github.com/victorsdou/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	payslipRepo := postgresql.NewPayslipRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	txManager := postgresql.NewTxManager(db)

	rates := payroll.DefaultRates()
	overrideRate(&rates.PrivateFundRate, cfg.Payroll.PrivateFundRate)
	overrideRate(&rates.PublicFundRate, cfg.Payroll.PublicFundRate)
	overrideRate(&rates.IndependentRetentionRate, cfg.Payroll.IndependentRetentionRate)

	calculator := payrollService.NewCalculator(rates)
	payrollSvc := payrollService.NewPayrollService(txManager, payslipRepo, periodRepo, overtimeRepo, employeeRepo, calculator)
	periodSvc := payrollService.NewPeriodService(periodRepo, payslipRepo, employeeRepo, payrollSvc, cfg.Payroll.Workers)
	overtimeSvc := overtimeService.NewOvertimeService(overtimeRepo, payslipRepo, periodRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc, periodSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(cfg.App.Env, payrollHandler, overtimeHandler, employeeHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Starting server on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Error starting server:", err)
	}
}

func overrideRate(dst *decimal.Decimal, value string) {
	if value == "" {
		return
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		log.Fatalf("invalid rate override %q: %v", value, err)
	}
	*dst = rate
}
