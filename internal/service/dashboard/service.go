package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nominamx/payroll-backend-go/internal/domain/dashboard"
	"github.com/nominamx/payroll-backend-go/internal/pkg/period"
	"github.com/nominamx/payroll-backend-go/internal/pkg/validator"
)

type Service struct {
	repo dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &Service{repo: repo}
}

func validateMonth(month string) error {
	if !period.IsValidMonth(month) {
		return validator.ValidationErrors{{Field: "month", Message: "month must be a valid month name"}}
	}
	return nil
}

// GetStats sums one period, or the whole year when month is empty.
func (s *Service) GetStats(ctx context.Context, month string, year int) (dashboard.PeriodStats, error) {
	if month != "" {
		if err := validateMonth(month); err != nil {
			return dashboard.PeriodStats{}, err
		}
	}
	return s.repo.GetPeriodStats(ctx, month, year)
}

func (s *Service) GetMonthlyTrend(ctx context.Context, year int) ([]dashboard.MonthlyTrendRow, error) {
	rows, err := s.repo.GetMonthlyTrend(ctx, year)
	if err != nil {
		return nil, err
	}
	return PadMonthlyTrend(rows), nil
}

func (s *Service) GetExpenseDistribution(ctx context.Context, month string, year int) (dashboard.ExpenseDistribution, error) {
	if err := validateMonth(month); err != nil {
		return dashboard.ExpenseDistribution{}, err
	}
	return s.repo.GetExpenseDistribution(ctx, month, year)
}

func (s *Service) GetEmployeeDetails(ctx context.Context, month string, year int) ([]dashboard.EmployeeDetail, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	return s.repo.GetEmployeeDetails(ctx, month, year)
}

func (s *Service) GetAvailableYears(ctx context.Context) ([]int, error) {
	// An empty result is the caller's concern; no fallback year is invented
	// here.
	return s.repo.GetAvailableYears(ctx)
}

// previousPeriod is the comparison baseline: the same month one year
// earlier, so seasonal periods are compared like for like.
func previousPeriod(month string, year int) (string, int) {
	return month, year - 1
}

func (s *Service) GetComparative(ctx context.Context, month string, year int) (dashboard.ComparativeResponse, error) {
	if err := validateMonth(month); err != nil {
		return dashboard.ComparativeResponse{}, err
	}

	prevMonth, prevYear := previousPeriod(month, year)

	var (
		currentStats   dashboard.PeriodStats
		previousStats  dashboard.PeriodStats
		currentDetails []dashboard.EmployeeDetail
		prevDetails    []dashboard.EmployeeDetail
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentStats, err = s.repo.GetPeriodStats(gctx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		previousStats, err = s.repo.GetPeriodStats(gctx, prevMonth, prevYear)
		return err
	})
	g.Go(func() error {
		var err error
		currentDetails, err = s.repo.GetEmployeeDetails(gctx, month, year)
		return err
	})
	g.Go(func() error {
		var err error
		prevDetails, err = s.repo.GetEmployeeDetails(gctx, prevMonth, prevYear)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.ComparativeResponse{}, err
	}

	return dashboard.ComparativeResponse{
		CurrentMonth:  month,
		CurrentYear:   year,
		PreviousMonth: prevMonth,
		PreviousYear:  prevYear,
		Current:       currentStats,
		Previous:      previousStats,
		Comparison:    CompareStats(currentStats, previousStats),
		Employees:     BuildEmployeeComparison(currentDetails, prevDetails),
	}, nil
}
