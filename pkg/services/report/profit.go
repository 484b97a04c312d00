package report

import (
	"context"
	"fmt"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

type itemProfitAcc struct {
	name      string
	revenue   decimal.Decimal
	sold      int64
	cost      decimal.Decimal
	purchased int64
}

type companyProfitAcc struct {
	name      string
	revenue   decimal.Decimal
	items     map[int64]*itemProfitAcc
	itemOrder []int64
}

type purchaseAcc struct {
	cost  decimal.Decimal
	items map[int64]*itemProfitAcc
}

// Profit compares window-level revenue against window-level spend, per
// company and per item. Cost is whatever the company purchased in the window,
// not the cost of the specific units sold; companies with purchases but no
// sales do not appear.
func (s *service) Profit(ctx context.Context, start, end time.Time) (*domain.ProfitReport, error) {
	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	saleLines, err := s.store.GetSaleLines(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load sale lines: %w", err)
	}
	purchaseLines, err := s.store.GetPurchaseLines(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load purchase lines: %w", err)
	}

	companies := make(map[int64]*companyProfitAcc)
	for _, l := range saleLines {
		if l.Status == store.StatusCancelled {
			continue
		}
		c, ok := companies[l.CompanyID]
		if !ok {
			c = &companyProfitAcc{
				name:  l.CompanyName,
				items: make(map[int64]*itemProfitAcc),
			}
			companies[l.CompanyID] = c
		}
		c.revenue = c.revenue.Add(l.TotalPrice)

		it, ok := c.items[l.ItemID]
		if !ok {
			it = &itemProfitAcc{name: l.ItemName}
			c.items[l.ItemID] = it
			c.itemOrder = append(c.itemOrder, l.ItemID)
		}
		it.revenue = it.revenue.Add(l.TotalPrice)
		it.sold += l.Quantity
	}

	purchases := make(map[int64]*purchaseAcc)
	for _, l := range purchaseLines {
		if l.Status == store.StatusCancelled {
			continue
		}
		p, ok := purchases[l.CompanyID]
		if !ok {
			p = &purchaseAcc{items: make(map[int64]*itemProfitAcc)}
			purchases[l.CompanyID] = p
		}
		p.cost = p.cost.Add(l.TotalPrice)

		it, ok := p.items[l.ItemID]
		if !ok {
			it = &itemProfitAcc{}
			p.items[l.ItemID] = it
		}
		it.cost = it.cost.Add(l.TotalPrice)
		it.purchased += l.Quantity
	}

	report := &domain.ProfitReport{
		Period:    domain.Period{Start: start, End: end},
		Companies: make(map[int64]*domain.CompanyProfit, len(companies)),
	}

	for id, c := range companies {
		cost := decimal.Zero
		var bought *purchaseAcc
		if p, ok := purchases[id]; ok {
			cost = p.cost
			bought = p
		}
		gross := c.revenue.Sub(cost)

		cp := &domain.CompanyProfit{
			CompanyName:  c.name,
			TotalRevenue: c.revenue,
			TotalCost:    cost,
			GrossProfit:  gross,
			ProfitMargin: marginPercent(gross, c.revenue),
			Items:        make([]domain.ItemProfit, 0, len(c.items)),
		}

		for _, itemID := range c.itemOrder {
			it := c.items[itemID]
			itemCost := decimal.Zero
			var purchased int64
			if bought != nil {
				if pi, ok := bought.items[itemID]; ok {
					itemCost = pi.cost
					purchased = pi.purchased
				}
			}
			profit := it.revenue.Sub(itemCost)
			cp.Items = append(cp.Items, domain.ItemProfit{
				ItemName:          it.name,
				Revenue:           it.revenue,
				Cost:              itemCost,
				Profit:            profit,
				ProfitMargin:      marginPercent(profit, it.revenue),
				SoldQuantity:      it.sold,
				PurchasedQuantity: purchased,
			})
		}
		report.Companies[id] = cp
	}

	return report, nil
}

// marginPercent is profit over revenue as a percentage, 0 when there is no
// revenue to divide by.
func marginPercent(profit, revenue decimal.Decimal) float64 {
	if revenue.Sign() <= 0 {
		return 0
	}
	return profit.Div(revenue).Mul(decimal.NewFromInt(100)).InexactFloat64()
}
