package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nominamx/payroll-backend-go/internal/config"
	payrollDomain "github.com/nominamx/payroll-backend-go/internal/domain/payroll"
	appHTTP "github.com/nominamx/payroll-backend-go/internal/handler/http"
	"github.com/nominamx/payroll-backend-go/internal/pkg/cron"
	"github.com/nominamx/payroll-backend-go/internal/pkg/database"
	"github.com/nominamx/payroll-backend-go/internal/pkg/jwt"
	"github.com/nominamx/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/nominamx/payroll-backend-go/internal/service/auth"
	catalogService "github.com/nominamx/payroll-backend-go/internal/service/catalog"
	dashboardService "github.com/nominamx/payroll-backend-go/internal/service/dashboard"
	payrollService "github.com/nominamx/payroll-backend-go/internal/service/payroll"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := payrollService.NewCalculator(payrollDomain.NewDefaultTaxPolicy(), cfg.Payroll)

	authSvc := authService.NewAuthService(userRepo, JWTService)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo, roleRepo, calculator)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo)
	catalogSvc := catalogService.NewCatalogService(roleRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	catalogHandler := appHTTP.NewCatalogHandler(catalogSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		payrollHandler,
		dashboardHandler,
		catalogHandler,
	)

	scheduler := cron.NewScheduler()
	cron.RegisterCoverageJob(scheduler, payrollSvc)
	scheduler.Start()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stop
		scheduler.Stop()
		db.Close()
		os.Exit(0)
	}()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
