package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nominamx/payroll-backend-go/internal/config"
	"github.com/nominamx/payroll-backend-go/internal/handler/http/middleware"
	"github.com/nominamx/payroll-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
	catalogHandler CatalogHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:4200"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/payrolls", func(r chi.Router) {
				r.Get("/", payrollHandler.List)
				r.Post("/", payrollHandler.Create)
				r.Post("/bulk", payrollHandler.BulkGenerate)
				r.Get("/by-month", payrollHandler.ListByMonth)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.Get)
					r.Put("/", payrollHandler.Update)
					r.Delete("/", payrollHandler.Delete)
					r.Post("/restore", payrollHandler.Restore)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", dashboardHandler.GetStats)
				r.Get("/monthly-trend", dashboardHandler.GetMonthlyTrend)
				r.Get("/expense-distribution", dashboardHandler.GetExpenseDistribution)
				r.Get("/employee-details", dashboardHandler.GetEmployeeDetails)
				r.Get("/available-years", dashboardHandler.GetAvailableYears)
				r.Get("/comparative", dashboardHandler.GetComparative)
			})

			r.Get("/roles", catalogHandler.ListRoles)
			r.Get("/employees", catalogHandler.ListEmployees)
		})
	})
	return r
}
