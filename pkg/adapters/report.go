package adapters

import (
	"github.com/bo-tools/sales-atlas/pkg/models/api"
	"github.com/bo-tools/sales-atlas/pkg/models/domain"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// Decimal amounts become plain floats here, at the JSON boundary, and nowhere
// earlier. The "no data" message is attached here too so every empty report
// keeps the shape of a populated one.

func MapPeriodDomainToApi(p domain.Period) *api.Period {
	return &api.Period{
		StartDate: p.Start.Format(dateLayout),
		EndDate:   p.End.Format(dateLayout),
	}
}

func MapSalesReportDomainToApi(r *domain.SalesReport) api.SalesReport {
	out := api.SalesReport{
		Period: MapPeriodDomainToApi(r.Period),
		Data:   make(map[int64]api.CompanySales, len(r.Companies)),
	}
	if len(r.Companies) == 0 {
		out.Message = "no sales data available for the selected period"
		return out
	}

	for id, c := range r.Companies {
		cs := api.CompanySales{
			CompanyName:       c.CompanyName,
			TotalSales:        c.TotalSales.InexactFloat64(),
			TotalItemsSold:    c.TotalItemsSold,
			AverageOrderValue: c.AverageOrderValue.InexactFloat64(),
			ItemsAnalysis:     make([]api.ItemSales, 0, len(c.Items)),
			DailySales:        make([]api.DailySales, 0, len(c.DailySales)),
			TopSellingItems:   make([]api.TopSellingItem, 0, len(c.TopSellingItems)),
		}
		for _, it := range c.Items {
			cs.ItemsAnalysis = append(cs.ItemsAnalysis, api.ItemSales{
				ItemName:      it.ItemName,
				SKU:           it.SKU,
				TotalQuantity: it.TotalQuantity,
				TotalRevenue:  it.TotalRevenue.InexactFloat64(),
				AveragePrice:  it.AveragePrice.InexactFloat64(),
			})
		}
		for _, d := range c.DailySales {
			cs.DailySales = append(cs.DailySales, api.DailySales{
				Date:     d.Date.Format(dateLayout),
				Revenue:  d.Revenue.InexactFloat64(),
				Quantity: d.Quantity,
			})
		}
		for _, t := range c.TopSellingItems {
			cs.TopSellingItems = append(cs.TopSellingItems, api.TopSellingItem{
				ItemName: t.ItemName,
				SKU:      t.SKU,
				Quantity: t.Quantity,
				Revenue:  t.Revenue.InexactFloat64(),
			})
		}
		out.Data[id] = cs
	}
	return out
}

func MapInventoryReportDomainToApi(r *domain.InventoryReport) api.InventoryReport {
	out := api.InventoryReport{
		Data: make(map[int64]api.CompanyInventory, len(r.Companies)),
	}
	if len(r.Companies) == 0 {
		out.Message = "no inventory data available"
		return out
	}

	for id, c := range r.Companies {
		ci := api.CompanyInventory{
			CompanyName:     c.CompanyName,
			TotalItems:      c.TotalItems,
			TotalStockValue: c.TotalStockValue.InexactFloat64(),
			ItemsDetail:     make([]api.InventoryItemDetail, 0, len(c.Items)),
			LowStockItems:   make([]api.LowStockItem, 0, len(c.LowStockItems)),
		}
		for _, it := range c.Items {
			ci.ItemsDetail = append(ci.ItemsDetail, api.InventoryItemDetail{
				ItemName:     it.ItemName,
				SKU:          it.SKU,
				CurrentStock: it.CurrentStock,
				StockUnit:    it.StockUnit,
				CurrentPrice: it.CurrentPrice.InexactFloat64(),
				PriceUnit:    it.PriceUnit,
				StockValue:   it.StockValue.InexactFloat64(),
			})
		}
		for _, it := range c.LowStockItems {
			ci.LowStockItems = append(ci.LowStockItems, api.LowStockItem{
				ItemName:     it.ItemName,
				SKU:          it.SKU,
				CurrentStock: it.CurrentStock,
			})
		}
		out.Data[id] = ci
	}
	return out
}

func MapProfitReportDomainToApi(r *domain.ProfitReport) api.ProfitReport {
	out := api.ProfitReport{
		Period: MapPeriodDomainToApi(r.Period),
		Data:   make(map[int64]api.CompanyProfit, len(r.Companies)),
	}
	if len(r.Companies) == 0 {
		out.Message = "no profit data available for the selected period"
		return out
	}

	for id, c := range r.Companies {
		cp := api.CompanyProfit{
			CompanyName:   c.CompanyName,
			TotalRevenue:  c.TotalRevenue.InexactFloat64(),
			TotalCost:     c.TotalCost.InexactFloat64(),
			GrossProfit:   c.GrossProfit.InexactFloat64(),
			ProfitMargin:  c.ProfitMargin,
			ItemsAnalysis: make([]api.ItemProfit, 0, len(c.Items)),
		}
		for _, it := range c.Items {
			cp.ItemsAnalysis = append(cp.ItemsAnalysis, api.ItemProfit{
				ItemName:          it.ItemName,
				Revenue:           it.Revenue.InexactFloat64(),
				Cost:              it.Cost.InexactFloat64(),
				Profit:            it.Profit.InexactFloat64(),
				ProfitMargin:      it.ProfitMargin,
				SoldQuantity:      it.SoldQuantity,
				PurchasedQuantity: it.PurchasedQuantity,
			})
		}
		out.Data[id] = cp
	}
	return out
}

func MapTrendReportDomainToApi(r *domain.TrendReport) api.TrendReport {
	out := api.TrendReport{
		Period: MapPeriodDomainToApi(r.Period),
		Data: api.TrendData{
			MonthlyTrend: make([]api.MonthlyTrend, 0, len(r.Monthly)),
			Summary: api.TrendSummary{
				TotalOrders:       r.Summary.TotalOrders,
				TotalRevenue:      r.Summary.TotalRevenue.InexactFloat64(),
				AverageOrderValue: r.Summary.AverageOrderValue,
				TotalItemsSold:    r.Summary.TotalItemsSold,
			},
		},
	}
	if len(r.Monthly) == 0 {
		out.Message = "no trend data available for the selected period"
		return out
	}

	for _, m := range r.Monthly {
		out.Data.MonthlyTrend = append(out.Data.MonthlyTrend, api.MonthlyTrend{
			Month:             m.Month.Format(monthLayout),
			OrderCount:        m.OrderCount,
			TotalRevenue:      m.TotalRevenue.InexactFloat64(),
			UniqueCustomers:   m.UniqueCustomers,
			AverageOrderValue: m.AverageOrderValue,
			ItemsSold:         m.ItemsSold,
		})
	}
	return out
}

func MapTopItemsReportDomainToApi(r *domain.TopItemsReport) api.TopItemsReport {
	out := api.TopItemsReport{
		Period: MapPeriodDomainToApi(r.Period),
		Limit:  r.Limit,
		Data:   make([]api.TopItem, 0, len(r.Items)),
	}
	if len(r.Items) == 0 {
		out.Message = "no item sales recorded for the selected period"
		return out
	}

	for _, it := range r.Items {
		out.Data = append(out.Data, api.TopItem{
			ItemID:           it.ItemID,
			ItemName:         it.ItemName,
			SKU:              it.SKU,
			CompanyID:        it.CompanyID,
			CompanyName:      it.CompanyName,
			TotalQuantity:    it.TotalQuantity,
			TotalRevenue:     it.TotalRevenue.InexactFloat64(),
			OrderCount:       it.OrderCount,
			AverageUnitPrice: it.AverageUnitPrice.InexactFloat64(),
			CurrentStock:     it.CurrentStock,
		})
	}
	return out
}

func MapDashboardDomainToApi(d *domain.DashboardSnapshot) api.DashboardReport {
	return api.DashboardReport{
		Data: api.DashboardData{
			TotalSales:  api.Metric(d.TotalSales),
			AverageSale: api.Metric(d.AverageSale),
			Inquiries:   api.Metric(d.Inquiries),
			Invoices:    api.Metric(d.Invoices),
		},
	}
}

func MapHourlySeriesDomainToApi(h *domain.HourlySeries) api.HourlyReport {
	out := api.HourlyReport{
		Data: api.HourlyData{
			Hours:  h.Hours,
			Sales:  make([]float64, len(h.Sales)),
			Profit: make([]float64, len(h.Profit)),
		},
	}
	for i, v := range h.Sales {
		out.Data.Sales[i] = v.InexactFloat64()
	}
	for i, v := range h.Profit {
		out.Data.Profit[i] = v.InexactFloat64()
	}
	return out
}

func MapBrandSalesDomainToApi(brands []domain.BrandSales) api.BrandSalesReport {
	out := api.BrandSalesReport{
		Data: make([]api.BrandSales, 0, len(brands)),
	}
	if len(brands) == 0 {
		out.Message = "no brand sales recorded"
		return out
	}
	for _, b := range brands {
		out.Data = append(out.Data, api.BrandSales{
			CompanyID:   b.CompanyID,
			CompanyName: b.CompanyName,
			TotalSales:  b.TotalSales.InexactFloat64(),
		})
	}
	return out
}

func MapBrandPopularityDomainToApi(brands []domain.BrandPopularity) api.BrandPopularityReport {
	out := api.BrandPopularityReport{
		Data: make([]api.BrandPopularity, 0, len(brands)),
	}
	if len(brands) == 0 {
		out.Message = "no brand sales recorded"
		return out
	}
	for _, b := range brands {
		out.Data = append(out.Data, api.BrandPopularity{
			CompanyID:       b.CompanyID,
			CompanyName:     b.CompanyName,
			Orders:          b.Orders,
			ItemsSold:       b.ItemsSold,
			UniqueCustomers: b.UniqueCustomers,
			Score:           b.Score,
		})
	}
	return out
}

func MapBrandAveragesDomainToApi(r *domain.BrandAverageReport) api.BrandAverageReport {
	out := api.BrandAverageReport{
		Data: api.BrandAverageData{
			Interval: string(r.Interval),
			Brands:   make([]api.BrandAverage, 0, len(r.Brands)),
		},
	}
	if len(r.Brands) == 0 {
		out.Message = "no brand sales recorded"
		return out
	}
	for _, b := range r.Brands {
		out.Data.Brands = append(out.Data.Brands, api.BrandAverage{
			CompanyID:    b.CompanyID,
			CompanyName:  b.CompanyName,
			AverageSales: b.AverageSales.InexactFloat64(),
			Buckets:      b.Buckets,
		})
	}
	return out
}
