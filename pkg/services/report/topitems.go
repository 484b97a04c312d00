package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
)

// TopItems ranks items across all companies by quantity sold. The row cap is
// pushed down to the store query, not applied after the fact.
func (s *service) TopItems(ctx context.Context, start, end time.Time, limit int) (*domain.TopItemsReport, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be a positive integer, got %d", domain.ErrInvalidInput, limit)
	}

	rollups, err := s.store.GetTopSellingItems(ctx, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("load top selling items: %w", err)
	}

	report := &domain.TopItemsReport{
		Period: domain.Period{Start: start, End: end},
		Limit:  limit,
		Items:  make([]domain.TopItem, 0, len(rollups)),
	}
	for _, r := range rollups {
		report.Items = append(report.Items, domain.TopItem{
			ItemID:           r.ItemID,
			ItemName:         r.ItemName,
			SKU:              r.SKU,
			CompanyID:        r.CompanyID,
			CompanyName:      r.CompanyName,
			TotalQuantity:    r.TotalQuantity,
			TotalRevenue:     r.TotalRevenue,
			OrderCount:       r.OrderCount,
			AverageUnitPrice: r.AvgUnitPrice,
			CurrentStock:     r.Stock,
		})
	}
	return report, nil
}
