package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/store/mysql/sales"
)

// Service is the reporting engine. Every method reads a fresh projection from
// the store, folds it in memory and returns a value; no state is kept between
// invocations.
type Service interface {
	SalesByCompany(ctx context.Context, start, end time.Time) (*domain.SalesReport, error)
	Inventory(ctx context.Context) (*domain.InventoryReport, error)
	Profit(ctx context.Context, start, end time.Time) (*domain.ProfitReport, error)
	MonthlyTrends(ctx context.Context, start, end time.Time) (*domain.TrendReport, error)
	TopItems(ctx context.Context, start, end time.Time, limit int) (*domain.TopItemsReport, error)
	Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error)
	HourlySeries(ctx context.Context) (*domain.HourlySeries, error)
	BrandSales(ctx context.Context) ([]domain.BrandSales, error)
	BrandPopularity(ctx context.Context) ([]domain.BrandPopularity, error)
	BrandAverages(ctx context.Context, period domain.BucketPeriod) (*domain.BrandAverageReport, error)
	Ping(ctx context.Context) error
}

type service struct {
	store sales.Store
	now   func() time.Time
}

func NewService(store sales.Store) Service {
	return &service{
		store: store,
		now:   time.Now,
	}
}

func (s *service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// checkWindow rejects reversed windows only; a single-day window with equal
// start and end dates is valid.
func checkWindow(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date %s must not be after end date %s",
			domain.ErrInvalidInput,
			start.Format("2006-01-02"),
			end.Format("2006-01-02"))
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func truncateMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// truncateWeek snaps to the Monday the date falls in.
func truncateWeek(t time.Time) time.Time {
	d := truncateDay(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
