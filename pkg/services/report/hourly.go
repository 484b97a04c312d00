package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// defaultMarginPercent stands in for items with no configured gross margin.
const defaultMarginPercent = 20

const hourlyBuckets = 24

// HourlySeries charts sales and estimated profit over the rolling last 24
// hours: 23 full past hours plus the current partial one, oldest first.
// Profit per line is total_price times the item margin, or the default margin
// when the item has none configured.
func (s *service) HourlySeries(ctx context.Context) (*domain.HourlySeries, error) {
	end := s.now()
	base := end.Truncate(time.Hour).Add(-(hourlyBuckets - 1) * time.Hour)

	lines, err := s.store.GetHourlySaleLines(ctx, base, end)
	if err != nil {
		return nil, fmt.Errorf("load hourly sale lines: %w", err)
	}

	series := &domain.HourlySeries{
		Hours:  make([]string, hourlyBuckets),
		Sales:  make([]decimal.Decimal, hourlyBuckets),
		Profit: make([]decimal.Decimal, hourlyBuckets),
	}
	for i := range series.Hours {
		series.Hours[i] = fmt.Sprintf("%02d:00", base.Add(time.Duration(i)*time.Hour).Hour())
	}

	hundred := decimal.NewFromInt(100)
	fallback := decimal.NewFromInt(defaultMarginPercent)

	for _, l := range lines {
		if l.Status == store.StatusCancelled {
			continue
		}
		idx := int(l.SoldAt.Truncate(time.Hour).Sub(base) / time.Hour)
		if idx < 0 || idx >= hourlyBuckets {
			continue
		}

		margin := fallback
		if l.GrossMargin.Valid {
			margin = l.GrossMargin.Decimal
		}

		series.Sales[idx] = series.Sales[idx].Add(l.TotalPrice)
		series.Profit[idx] = series.Profit[idx].Add(l.TotalPrice.Mul(margin).Div(hundred))
	}

	return series, nil
}
