package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/nominamx/payroll-backend-go/internal/domain/payroll"
)

// RegisterCoverageJob schedules a daily check that logs the active employees
// still missing a payroll record for the current period.
func RegisterCoverageJob(s *Scheduler, payrollService payroll.PayrollService) {
	s.AddJob("payroll-coverage", 24*time.Hour, func(ctx context.Context) error {
		missing, err := payrollService.MissingForCurrentPeriod(ctx)
		if err != nil {
			return err
		}

		if len(missing) == 0 {
			slog.Info("Payroll coverage complete for current period")
			return nil
		}
		slog.Warn("Employees missing a payroll record for current period",
			"count", len(missing),
			"employee_numbers", missing,
		)
		return nil
	})
}
