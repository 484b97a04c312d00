package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

type monthAcc struct {
	orders    int64
	revenue   decimal.Decimal
	customers map[string]struct{}
	quantity  int64
}

// MonthlyTrends buckets sale orders by calendar month. Customers are counted
// by name, which is not a stable identity key; collisions undercount.
// The summary average order value is the mean of the per-month means, not
// weighted by order count.
func (s *service) MonthlyTrends(ctx context.Context, start, end time.Time) (*domain.TrendReport, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	orders, err := s.store.GetSaleOrders(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load sale orders: %w", err)
	}

	months := make(map[time.Time]*monthAcc)
	for _, o := range orders {
		if o.Status == store.StatusCancelled {
			continue
		}
		key := truncateMonth(o.OrderedAt)
		m, ok := months[key]
		if !ok {
			m = &monthAcc{customers: make(map[string]struct{})}
			months[key] = m
		}
		m.orders++
		m.revenue = m.revenue.Add(o.TotalAmount)
		m.customers[o.CustomerName] = struct{}{}
		m.quantity += o.ItemQuantity
	}

	keys := make([]time.Time, 0, len(months))
	for key := range months {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	report := &domain.TrendReport{
		Period:  domain.Period{Start: start, End: end},
		Monthly: make([]domain.MonthlyTrend, 0, len(keys)),
	}

	var meanSum float64
	for _, key := range keys {
		m := months[key]
		avg := m.revenue.Div(decimal.NewFromInt(m.orders)).InexactFloat64()
		meanSum += avg

		report.Monthly = append(report.Monthly, domain.MonthlyTrend{
			Month:             key,
			OrderCount:        m.orders,
			TotalRevenue:      m.revenue,
			UniqueCustomers:   int64(len(m.customers)),
			AverageOrderValue: avg,
			ItemsSold:         m.quantity,
		})

		report.Summary.TotalOrders += m.orders
		report.Summary.TotalRevenue = report.Summary.TotalRevenue.Add(m.revenue)
		report.Summary.TotalItemsSold += m.quantity
	}

	if len(keys) > 0 {
		report.Summary.AverageOrderValue = meanSum / float64(len(keys))
	}

	return report, nil
}
