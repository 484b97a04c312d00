package api

// Period is the date window echoed back on date-scoped reports.
type Period struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Error is the body returned on 4xx/5xx responses.
type Error struct {
	Error string `json:"error"`
}

type ItemSales struct {
	ItemName      string  `json:"item_name"`
	SKU           string  `json:"sku"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	AveragePrice  float64 `json:"average_price"`
}

type DailySales struct {
	Date     string  `json:"date"`
	Revenue  float64 `json:"revenue"`
	Quantity int64   `json:"quantity"`
}

type TopSellingItem struct {
	ItemName string  `json:"item_name"`
	SKU      string  `json:"sku"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

type CompanySales struct {
	CompanyName       string           `json:"company_name"`
	TotalSales        float64          `json:"total_sales"`
	TotalItemsSold    int64            `json:"total_items_sold"`
	AverageOrderValue float64          `json:"average_order_value"`
	ItemsAnalysis     []ItemSales      `json:"items_analysis"`
	DailySales        []DailySales     `json:"daily_sales"`
	TopSellingItems   []TopSellingItem `json:"top_selling_items"`
}

// SalesReport is the /analytics/sales envelope. Data is keyed by company id;
// Message is set, and Data left empty, when the window matched no rows.
type SalesReport struct {
	Period  *Period                `json:"period,omitempty"`
	Message string                 `json:"message,omitempty"`
	Data    map[int64]CompanySales `json:"data"`
}

type InventoryItemDetail struct {
	ItemName     string  `json:"item_name"`
	SKU          string  `json:"sku"`
	CurrentStock int64   `json:"current_stock"`
	StockUnit    string  `json:"stock_unit"`
	CurrentPrice float64 `json:"current_price"`
	PriceUnit    string  `json:"price_unit"`
	StockValue   float64 `json:"stock_value"`
}

type LowStockItem struct {
	ItemName     string `json:"item_name"`
	SKU          string `json:"sku"`
	CurrentStock int64  `json:"current_stock"`
}

type CompanyInventory struct {
	CompanyName     string                `json:"company_name"`
	TotalItems      int64                 `json:"total_items"`
	TotalStockValue float64               `json:"total_stock_value"`
	ItemsDetail     []InventoryItemDetail `json:"items_detail"`
	LowStockItems   []LowStockItem        `json:"low_stock_items"`
}

type InventoryReport struct {
	Message string                     `json:"message,omitempty"`
	Data    map[int64]CompanyInventory `json:"data"`
}

type ItemProfit struct {
	ItemName          string  `json:"item_name"`
	Revenue           float64 `json:"revenue"`
	Cost              float64 `json:"cost"`
	Profit            float64 `json:"profit"`
	ProfitMargin      float64 `json:"profit_margin"`
	SoldQuantity      int64   `json:"sold_quantity"`
	PurchasedQuantity int64   `json:"purchased_quantity"`
}

type CompanyProfit struct {
	CompanyName   string       `json:"company_name"`
	TotalRevenue  float64      `json:"total_revenue"`
	TotalCost     float64      `json:"total_cost"`
	GrossProfit   float64      `json:"gross_profit"`
	ProfitMargin  float64      `json:"profit_margin"`
	ItemsAnalysis []ItemProfit `json:"items_analysis"`
}

type ProfitReport struct {
	Period  *Period                 `json:"period,omitempty"`
	Message string                  `json:"message,omitempty"`
	Data    map[int64]CompanyProfit `json:"data"`
}

type MonthlyTrend struct {
	Month             string  `json:"month"`
	OrderCount        int64   `json:"order_count"`
	TotalRevenue      float64 `json:"total_revenue"`
	UniqueCustomers   int64   `json:"unique_customers"`
	AverageOrderValue float64 `json:"average_order_value"`
	ItemsSold         int64   `json:"items_sold"`
}

type TrendSummary struct {
	TotalOrders       int64   `json:"total_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
	TotalItemsSold    int64   `json:"total_items_sold"`
}

// TrendData keeps its shape on the no-data path: an empty monthly_trend list
// and a zeroed summary, so callers never special-case the parse.
type TrendData struct {
	MonthlyTrend []MonthlyTrend `json:"monthly_trend"`
	Summary      TrendSummary   `json:"summary"`
}

type TrendReport struct {
	Period  *Period   `json:"period,omitempty"`
	Message string    `json:"message,omitempty"`
	Data    TrendData `json:"data"`
}

type TopItem struct {
	ItemID           int64   `json:"item_id"`
	ItemName         string  `json:"item_name"`
	SKU              string  `json:"sku"`
	CompanyID        int64   `json:"company_id"`
	CompanyName      string  `json:"company_name"`
	TotalQuantity    int64   `json:"total_quantity"`
	TotalRevenue     float64 `json:"total_revenue"`
	OrderCount       int64   `json:"order_count"`
	AverageUnitPrice float64 `json:"average_unit_price"`
	CurrentStock     int64   `json:"current_stock"`
}

type TopItemsReport struct {
	Period  *Period   `json:"period,omitempty"`
	Message string    `json:"message,omitempty"`
	Limit   int       `json:"limit"`
	Data    []TopItem `json:"data"`
}

type Metric struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type DashboardData struct {
	TotalSales  Metric `json:"total_sales"`
	AverageSale Metric `json:"average_sale"`
	Inquiries   Metric `json:"inquiries"`
	Invoices    Metric `json:"invoices"`
}

type DashboardReport struct {
	Data DashboardData `json:"data"`
}

type HourlyData struct {
	Hours  []string  `json:"hours"`
	Sales  []float64 `json:"sales"`
	Profit []float64 `json:"profit"`
}

type HourlyReport struct {
	Data HourlyData `json:"data"`
}

type BrandSales struct {
	CompanyID   int64   `json:"company_id"`
	CompanyName string  `json:"company_name"`
	TotalSales  float64 `json:"total_sales"`
}

type BrandSalesReport struct {
	Message string       `json:"message,omitempty"`
	Data    []BrandSales `json:"data"`
}

type BrandPopularity struct {
	CompanyID       int64   `json:"company_id"`
	CompanyName     string  `json:"company_name"`
	Orders          int64   `json:"orders"`
	ItemsSold       int64   `json:"items_sold"`
	UniqueCustomers int64   `json:"unique_customers"`
	Score           float64 `json:"score"`
}

type BrandPopularityReport struct {
	Message string            `json:"message,omitempty"`
	Data    []BrandPopularity `json:"data"`
}

type BrandAverage struct {
	CompanyID    int64   `json:"company_id"`
	CompanyName  string  `json:"company_name"`
	AverageSales float64 `json:"average_sales"`
	Buckets      int64   `json:"buckets"`
}

type BrandAverageData struct {
	Interval string         `json:"interval"`
	Brands   []BrandAverage `json:"brands"`
}

type BrandAverageReport struct {
	Message string           `json:"message,omitempty"`
	Data    BrandAverageData `json:"data"`
}
