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

// topSellingLimit caps the per-company top-seller list.
const topSellingLimit = 5

type itemSalesAcc struct {
	name     string
	sku      string
	quantity int64
	revenue  decimal.Decimal
	priceSum decimal.Decimal
	lines    int64
}

type dailySalesAcc struct {
	revenue  decimal.Decimal
	quantity int64
}

type companySalesAcc struct {
	name      string
	total     decimal.Decimal
	quantity  int64
	lines     int64
	items     map[int64]*itemSalesAcc
	itemOrder []int64
	daily     map[time.Time]*dailySalesAcc
}

// SalesByCompany folds the sale lines of the window into per-company rollups:
// totals, per-item breakdown, a date-ascending daily series and the top
// sellers by quantity.
func (s *service) SalesByCompany(ctx context.Context, start, end time.Time) (*domain.SalesReport, error) {
	logger := zerolog.Ctx(ctx)

	if err := checkWindow(start, end); err != nil {
		return nil, err
	}

	lines, err := s.store.GetSaleLines(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("load sale lines: %w", err)
	}

	companies := make(map[int64]*companySalesAcc)
	for _, l := range lines {
		if l.Status == store.StatusCancelled {
			continue
		}

		c, ok := companies[l.CompanyID]
		if !ok {
			c = &companySalesAcc{
				name:  l.CompanyName,
				items: make(map[int64]*itemSalesAcc),
				daily: make(map[time.Time]*dailySalesAcc),
			}
			companies[l.CompanyID] = c
		}

		c.total = c.total.Add(l.TotalPrice)
		c.quantity += l.Quantity
		c.lines++

		it, ok := c.items[l.ItemID]
		if !ok {
			it = &itemSalesAcc{name: l.ItemName, sku: l.SKU}
			c.items[l.ItemID] = it
			c.itemOrder = append(c.itemOrder, l.ItemID)
		}
		it.quantity += l.Quantity
		it.revenue = it.revenue.Add(l.TotalPrice)
		it.priceSum = it.priceSum.Add(l.UnitPrice)
		it.lines++

		day := truncateDay(l.SoldAt)
		d, ok := c.daily[day]
		if !ok {
			d = &dailySalesAcc{}
			c.daily[day] = d
		}
		d.revenue = d.revenue.Add(l.TotalPrice)
		d.quantity += l.Quantity
	}

	report := &domain.SalesReport{
		Period:    domain.Period{Start: start, End: end},
		Companies: make(map[int64]*domain.CompanySales, len(companies)),
	}

	for id, c := range companies {
		cs := &domain.CompanySales{
			CompanyName:       c.name,
			TotalSales:        c.total,
			TotalItemsSold:    c.quantity,
			AverageOrderValue: c.total.Div(decimal.NewFromInt(c.lines)),
			Items:             make([]domain.ItemSales, 0, len(c.items)),
		}
		for _, itemID := range c.itemOrder {
			it := c.items[itemID]
			cs.Items = append(cs.Items, domain.ItemSales{
				ItemID:        itemID,
				ItemName:      it.name,
				SKU:           it.sku,
				TotalQuantity: it.quantity,
				TotalRevenue:  it.revenue,
				AveragePrice:  it.priceSum.Div(decimal.NewFromInt(it.lines)),
			})
		}
		cs.DailySales = materializeDaily(c.daily)
		cs.TopSellingItems = topSelling(cs.Items, topSellingLimit)
		report.Companies[id] = cs
	}

	logger.Debug().
		Int("companies", len(report.Companies)).
		Int("lines", len(lines)).
		Msg("sales report computed")

	return report, nil
}

func materializeDaily(daily map[time.Time]*dailySalesAcc) []domain.DailySales {
	days := make([]time.Time, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	series := make([]domain.DailySales, 0, len(days))
	for _, day := range days {
		d := daily[day]
		series = append(series, domain.DailySales{
			Date:     day,
			Revenue:  d.revenue,
			Quantity: d.quantity,
		})
	}
	return series
}

// topSelling ranks items by quantity sold. The sort is stable so ties keep
// their first-seen order.
func topSelling(items []domain.ItemSales, limit int) []domain.TopSellingItem {
	ranked := make([]domain.TopSellingItem, 0, len(items))
	for _, it := range items {
		ranked = append(ranked, domain.TopSellingItem{
			ItemID:   it.ItemID,
			ItemName: it.ItemName,
			SKU:      it.SKU,
			Quantity: it.TotalQuantity,
			Revenue:  it.TotalRevenue,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Quantity > ranked[j].Quantity })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
