package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is the date window a report was computed over.
type Period struct {
	Start time.Time
	End   time.Time
}

// ItemSales is the per-item breakdown inside a company's sales analysis.
type ItemSales struct {
	ItemID        int64
	ItemName      string
	SKU           string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	AveragePrice  decimal.Decimal
}

// DailySales is one point of a company's date-ascending sales series.
type DailySales struct {
	Date     time.Time
	Revenue  decimal.Decimal
	Quantity int64
}

// TopSellingItem is one entry of a company's quantity-ranked item list.
type TopSellingItem struct {
	ItemID   int64
	ItemName string
	SKU      string
	Quantity int64
	Revenue  decimal.Decimal
}

// CompanySales holds all sales rollups for a single company.
type CompanySales struct {
	CompanyName       string
	TotalSales        decimal.Decimal
	TotalItemsSold    int64
	AverageOrderValue decimal.Decimal
	Items             []ItemSales
	DailySales        []DailySales
	TopSellingItems   []TopSellingItem
}

// SalesReport maps company id to that company's sales analysis.
// An empty Companies map is the valid "no data" outcome, not an error.
type SalesReport struct {
	Period    Period
	Companies map[int64]*CompanySales
}

// InventoryItemDetail is the full per-item inventory record.
type InventoryItemDetail struct {
	ItemName     string
	SKU          string
	CurrentStock int64
	StockUnit    string
	CurrentPrice decimal.Decimal
	PriceUnit    string
	StockValue   decimal.Decimal
}

// LowStockItem flags an item whose stock fell under the reorder threshold.
type LowStockItem struct {
	ItemName     string
	SKU          string
	CurrentStock int64
}

// CompanyInventory holds the live-state inventory rollup for one company.
type CompanyInventory struct {
	CompanyName     string
	TotalItems      int64
	TotalStockValue decimal.Decimal
	Items           []InventoryItemDetail
	LowStockItems   []LowStockItem
}

type InventoryReport struct {
	Companies map[int64]*CompanyInventory
}

// ItemProfit compares an item's in-window revenue against in-window spend.
// Cost is whatever was purchased in the window, not cost of the units sold.
type ItemProfit struct {
	ItemName          string
	Revenue           decimal.Decimal
	Cost              decimal.Decimal
	Profit            decimal.Decimal
	ProfitMargin      float64
	SoldQuantity      int64
	PurchasedQuantity int64
}

type CompanyProfit struct {
	CompanyName  string
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	GrossProfit  decimal.Decimal
	ProfitMargin float64
	Items        []ItemProfit
}

type ProfitReport struct {
	Period    Period
	Companies map[int64]*CompanyProfit
}

// MonthlyTrend is one calendar-month bucket of the trend series.
type MonthlyTrend struct {
	Month             time.Time
	OrderCount        int64
	TotalRevenue      decimal.Decimal
	UniqueCustomers   int64
	AverageOrderValue float64
	ItemsSold         int64
}

// TrendSummary totals the series. AverageOrderValue is the mean of the
// per-month means, not weighted by order count.
type TrendSummary struct {
	TotalOrders       int64
	TotalRevenue      decimal.Decimal
	AverageOrderValue float64
	TotalItemsSold    int64
}

type TrendReport struct {
	Period  Period
	Monthly []MonthlyTrend
	Summary TrendSummary
}

// TopItem is one row of the cross-company item ranking. CurrentStock is the
// item's live stock at query time, not at sale time.
type TopItem struct {
	ItemID           int64
	ItemName         string
	SKU              string
	CompanyID        int64
	CompanyName      string
	TotalQuantity    int64
	TotalRevenue     decimal.Decimal
	OrderCount       int64
	AverageUnitPrice decimal.Decimal
	CurrentStock     int64
}

type TopItemsReport struct {
	Period Period
	Limit  int
	Items  []TopItem
}

// Metric is a dashboard value paired with its month-over-month change.
type Metric struct {
	Value  float64
	Change float64
}

// DashboardSnapshot compares the current partial month against the previous one.
type DashboardSnapshot struct {
	TotalSales  Metric
	AverageSale Metric
	Inquiries   Metric
	Invoices    Metric
}

// HourlySeries holds parallel arrays for the rolling 24h sales/profit chart.
type HourlySeries struct {
	Hours  []string
	Sales  []decimal.Decimal
	Profit []decimal.Decimal
}

// BrandSales is a company's all-time sales total.
type BrandSales struct {
	CompanyID   int64
	CompanyName string
	TotalSales  decimal.Decimal
}

// BrandPopularity carries the raw counters and the normalized 0-100 score.
type BrandPopularity struct {
	CompanyID       int64
	CompanyName     string
	Orders          int64
	ItemsSold       int64
	UniqueCustomers int64
	Score           float64
}

// BrandAverage is a company's mean of per-bucket sales sums.
type BrandAverage struct {
	CompanyID    int64
	CompanyName  string
	AverageSales decimal.Decimal
	Buckets      int64
}

type BrandAverageReport struct {
	Interval BucketPeriod
	Brands   []BrandAverage
}
