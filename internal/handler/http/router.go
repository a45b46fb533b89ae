package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, payrollHandler PayrollHandler, overtimeHandler OvertimeHandler, employeeHandler EmployeeHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1/payroll", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListActiveEmployees)
			r.Get("/{id}", employeeHandler.GetEmployee)

			r.Route("/{id}/overtime", func(r chi.Router) {
				r.Get("/", overtimeHandler.ListOvertime)
				r.Post("/", overtimeHandler.AddOvertime)
			})
		})

		r.Route("/periods/{year}/{month}", func(r chi.Router) {
			r.Post("/process", payrollHandler.ProcessPeriod)
			r.Get("/payslips", payrollHandler.ListPeriodPayslips)
		})

		r.Route("/payslips/{id}", func(r chi.Router) {
			r.Get("/", payrollHandler.GetPayslip)
			r.Post("/recalculate", payrollHandler.RecalculatePayslip)
			r.Patch("/adjustments", payrollHandler.SetAdjustments)
			r.Post("/confirm", payrollHandler.ConfirmPayslip)
			r.Post("/unconfirm", payrollHandler.UnconfirmPayslip)
			r.Post("/pay", payrollHandler.PayPayslip)
		})

		r.Delete("/overtime/{id}", overtimeHandler.RemoveOvertime)
	})

	return r
}
