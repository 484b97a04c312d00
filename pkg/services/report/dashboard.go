package report

import (
	"context"
	"fmt"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

type monthBucket struct {
	count     int64
	amount    decimal.Decimal
	inquiries int64
	invoices  int64
}

// Dashboard compares the current partial calendar month against the previous
// one. With no data both sides stay zero and every change is 0.
func (s *service) Dashboard(ctx context.Context) (*domain.DashboardSnapshot, error) {
	now := s.now()
	currentStart := truncateMonth(now)
	previousStart := currentStart.AddDate(0, -1, 0)

	orders, err := s.store.GetSaleOrders(ctx, previousStart, now)
	if err != nil {
		return nil, fmt.Errorf("load sale orders: %w", err)
	}

	var current, previous monthBucket
	for _, o := range orders {
		if o.Status == store.StatusCancelled {
			continue
		}

		var b *monthBucket
		switch {
		case !o.OrderedAt.Before(currentStart):
			b = &current
		case !o.OrderedAt.Before(previousStart):
			b = &previous
		default:
			continue
		}

		b.count++
		b.amount = b.amount.Add(o.TotalAmount)
		switch o.Status {
		case store.StatusPending:
			b.inquiries++
		case store.StatusConfirmed, store.StatusShipped, store.StatusDelivered:
			b.invoices++
		}
	}

	return &domain.DashboardSnapshot{
		TotalSales:  metric(float64(current.count), float64(previous.count)),
		AverageSale: metric(averageAmount(current), averageAmount(previous)),
		Inquiries:   metric(float64(current.inquiries), float64(previous.inquiries)),
		Invoices:    metric(float64(current.invoices), float64(previous.invoices)),
	}, nil
}

func metric(current, previous float64) domain.Metric {
	return domain.Metric{
		Value:  current,
		Change: PercentChange(current, previous),
	}
}

func averageAmount(b monthBucket) float64 {
	if b.count == 0 {
		return 0
	}
	return b.amount.Div(decimal.NewFromInt(b.count)).InexactFloat64()
}
