package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Popularity score weights: orders and items sold dominate, unique customers
// contribute the remainder.
const (
	popularityOrderWeight    = 0.4
	popularityItemWeight     = 0.4
	popularityCustomerWeight = 0.2
)

// BrandSales is the all-time per-company sales rollup, largest first.
func (s *service) BrandSales(ctx context.Context) ([]domain.BrandSales, error) {
	lines, err := s.store.GetBrandSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand sale lines: %w", err)
	}

	totals := make(map[int64]*domain.BrandSales)
	order := make([]int64, 0)
	for _, l := range lines {
		if l.Status == store.StatusCancelled {
			continue
		}
		b, ok := totals[l.CompanyID]
		if !ok {
			b = &domain.BrandSales{CompanyID: l.CompanyID, CompanyName: l.CompanyName}
			totals[l.CompanyID] = b
			order = append(order, l.CompanyID)
		}
		b.TotalSales = b.TotalSales.Add(l.TotalPrice)
	}

	brands := make([]domain.BrandSales, 0, len(order))
	for _, id := range order {
		brands = append(brands, *totals[id])
	}
	sort.SliceStable(brands, func(i, j int) bool {
		return brands[i].TotalSales.GreaterThan(brands[j].TotalSales)
	})
	return brands, nil
}

type brandPopularityAcc struct {
	name      string
	orders    map[int64]struct{}
	items     int64
	customers map[string]struct{}
}

// BrandPopularity scores each company from its order, item and customer
// counters and normalizes so the top company lands on exactly 100. When every
// raw score is 0 all brands stay at 0.
func (s *service) BrandPopularity(ctx context.Context) ([]domain.BrandPopularity, error) {
	logger := zerolog.Ctx(ctx)

	lines, err := s.store.GetBrandSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand sale lines: %w", err)
	}

	accs := make(map[int64]*brandPopularityAcc)
	order := make([]int64, 0)
	for _, l := range lines {
		if l.Status == store.StatusCancelled {
			continue
		}
		a, ok := accs[l.CompanyID]
		if !ok {
			a = &brandPopularityAcc{
				name:      l.CompanyName,
				orders:    make(map[int64]struct{}),
				customers: make(map[string]struct{}),
			}
			accs[l.CompanyID] = a
			order = append(order, l.CompanyID)
		}
		a.orders[l.SaleID] = struct{}{}
		a.items += l.Quantity
		a.customers[l.CustomerName] = struct{}{}
	}

	brands := make([]domain.BrandPopularity, 0, len(order))
	var maxScore float64
	for _, id := range order {
		a := accs[id]
		b := domain.BrandPopularity{
			CompanyID:       id,
			CompanyName:     a.name,
			Orders:          int64(len(a.orders)),
			ItemsSold:       a.items,
			UniqueCustomers: int64(len(a.customers)),
		}
		b.Score = float64(b.Orders)*popularityOrderWeight +
			float64(b.ItemsSold)*popularityItemWeight +
			float64(b.UniqueCustomers)*popularityCustomerWeight
		if b.Score > maxScore {
			maxScore = b.Score
		}
		brands = append(brands, b)
	}

	if maxScore > 0 {
		for i := range brands {
			brands[i].Score = brands[i].Score / maxScore * 100
		}
	} else {
		logger.Warn().Msg("all brand popularity scores are zero, skipping normalization")
		for i := range brands {
			brands[i].Score = 0
		}
	}

	sort.SliceStable(brands, func(i, j int) bool { return brands[i].Score > brands[j].Score })
	return brands, nil
}

type brandAverageAcc struct {
	name    string
	buckets map[time.Time]decimal.Decimal
}

// BrandAverages computes, per company, the mean of its per-bucket sales sums,
// bucketed by week or month, largest mean first.
func (s *service) BrandAverages(ctx context.Context, period domain.BucketPeriod) (*domain.BrandAverageReport, error) {
	var truncate func(time.Time) time.Time
	switch period {
	case domain.BucketWeekly:
		truncate = truncateWeek
	case domain.BucketMonthly:
		truncate = truncateMonth
	default:
		return nil, fmt.Errorf("%w: unknown period %q, expected weekly or monthly", domain.ErrInvalidInput, period)
	}

	lines, err := s.store.GetBrandSaleLines(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand sale lines: %w", err)
	}

	accs := make(map[int64]*brandAverageAcc)
	order := make([]int64, 0)
	for _, l := range lines {
		if l.Status == store.StatusCancelled {
			continue
		}
		a, ok := accs[l.CompanyID]
		if !ok {
			a = &brandAverageAcc{
				name:    l.CompanyName,
				buckets: make(map[time.Time]decimal.Decimal),
			}
			accs[l.CompanyID] = a
			order = append(order, l.CompanyID)
		}
		key := truncate(l.SoldAt)
		a.buckets[key] = a.buckets[key].Add(l.TotalPrice)
	}

	report := &domain.BrandAverageReport{
		Interval: period,
		Brands:   make([]domain.BrandAverage, 0, len(order)),
	}
	for _, id := range order {
		a := accs[id]
		sum := decimal.Zero
		for _, v := range a.buckets {
			sum = sum.Add(v)
		}
		report.Brands = append(report.Brands, domain.BrandAverage{
			CompanyID:    id,
			CompanyName:  a.name,
			AverageSales: sum.Div(decimal.NewFromInt(int64(len(a.buckets)))),
			Buckets:      int64(len(a.buckets)),
		})
	}

	sort.SliceStable(report.Brands, func(i, j int) bool {
		return report.Brands[i].AverageSales.GreaterThan(report.Brands[j].AverageSales)
	})
	return report, nil
}
