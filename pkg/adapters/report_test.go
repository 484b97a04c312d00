package adapters

import (
	"testing"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window() domain.Period {
	return domain.Period{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestMapSalesReport_NoData(t *testing.T) {
	out := MapSalesReportDomainToApi(&domain.SalesReport{
		Period:    window(),
		Companies: map[int64]*domain.CompanySales{},
	})

	assert.Equal(t, "no sales data available for the selected period", out.Message)
	assert.NotNil(t, out.Data)
	assert.Empty(t, out.Data)
	require.NotNil(t, out.Period)
	assert.Equal(t, "2024-01-01", out.Period.StartDate)
	assert.Equal(t, "2024-01-31", out.Period.EndDate)
}

func TestMapSalesReport_ConvertsDecimals(t *testing.T) {
	out := MapSalesReportDomainToApi(&domain.SalesReport{
		Period: window(),
		Companies: map[int64]*domain.CompanySales{
			1: {
				CompanyName:       "Acme",
				TotalSales:        decimal.RequireFromString("30.50"),
				TotalItemsSold:    3,
				AverageOrderValue: decimal.RequireFromString("15.25"),
				DailySales: []domain.DailySales{
					{
						Date:     time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
						Revenue:  decimal.RequireFromString("20"),
						Quantity: 2,
					},
				},
			},
		},
	})

	assert.Empty(t, out.Message)
	c := out.Data[1]
	assert.InDelta(t, 30.5, c.TotalSales, 1e-9)
	assert.InDelta(t, 15.25, c.AverageOrderValue, 1e-9)
	require.Len(t, c.DailySales, 1)
	assert.Equal(t, "2024-01-05", c.DailySales[0].Date)
	assert.InDelta(t, 20, c.DailySales[0].Revenue, 1e-9)
}

func TestMapTrendReport_KeepsShapeOnNoData(t *testing.T) {
	out := MapTrendReportDomainToApi(&domain.TrendReport{Period: window()})

	assert.Equal(t, "no trend data available for the selected period", out.Message)
	assert.NotNil(t, out.Data.MonthlyTrend)
	assert.Empty(t, out.Data.MonthlyTrend)
	assert.Zero(t, out.Data.Summary.TotalOrders)
}

func TestMapMonthFormat(t *testing.T) {
	out := MapTrendReportDomainToApi(&domain.TrendReport{
		Period: window(),
		Monthly: []domain.MonthlyTrend{
			{
				Month:        time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
				OrderCount:   1,
				TotalRevenue: decimal.RequireFromString("100"),
			},
		},
	})

	require.Len(t, out.Data.MonthlyTrend, 1)
	assert.Equal(t, "2024-01", out.Data.MonthlyTrend[0].Month)
}

func TestMapBrandAverages_NoData(t *testing.T) {
	out := MapBrandAveragesDomainToApi(&domain.BrandAverageReport{Interval: domain.BucketWeekly})

	assert.Equal(t, "no brand sales recorded", out.Message)
	assert.Equal(t, "weekly", out.Data.Interval)
	assert.Empty(t, out.Data.Brands)
}
