package report

import (
	"context"
	"fmt"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// lowStockThreshold flags items that need reordering; the comparison is
// strictly below.
const lowStockThreshold = 10

// Inventory is a live-state report over the full snapshot, recomputed on
// every call. There is no time dimension.
func (s *service) Inventory(ctx context.Context) (*domain.InventoryReport, error) {
	rows, err := s.store.GetInventory(ctx)
	if err != nil {
		return nil, fmt.Errorf("load inventory: %w", err)
	}

	report := &domain.InventoryReport{
		Companies: make(map[int64]*domain.CompanyInventory),
	}

	for _, r := range rows {
		c, ok := report.Companies[r.CompanyID]
		if !ok {
			c = &domain.CompanyInventory{
				CompanyName:   r.CompanyName,
				Items:         make([]domain.InventoryItemDetail, 0),
				LowStockItems: make([]domain.LowStockItem, 0),
			}
			report.Companies[r.CompanyID] = c
		}

		stockValue := r.CurrentPrice.Mul(decimal.NewFromInt(r.Stock))
		c.TotalItems++
		c.TotalStockValue = c.TotalStockValue.Add(stockValue)
		c.Items = append(c.Items, domain.InventoryItemDetail{
			ItemName:     r.ItemName,
			SKU:          r.SKU,
			CurrentStock: r.Stock,
			StockUnit:    r.StockUnit,
			CurrentPrice: r.CurrentPrice,
			PriceUnit:    r.PriceUnit,
			StockValue:   stockValue,
		})

		if r.Stock < lowStockThreshold {
			c.LowStockItems = append(c.LowStockItems, domain.LowStockItem{
				ItemName:     r.ItemName,
				SKU:          r.SKU,
				CurrentStock: r.Stock,
			})
		}
	}

	return report, nil
}
