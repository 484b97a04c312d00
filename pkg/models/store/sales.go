package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction statuses as persisted on sale and purchase headers.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// SaleLine is one row of the sales join: sale header x line item x item x owning company.
type SaleLine struct {
	CompanyID   int64
	CompanyName string
	ItemID      int64
	ItemName    string
	SKU         string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	SoldAt      time.Time
	Status      string
}

// PurchaseLine mirrors SaleLine for the purchases side of the ledger.
type PurchaseLine struct {
	CompanyID   int64
	CompanyName string
	ItemID      int64
	ItemName    string
	SKU         string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	PurchasedAt time.Time
	Status      string
}

// InventoryRow is the live stock snapshot for a single item.
type InventoryRow struct {
	CompanyID    int64
	CompanyName  string
	ItemID       int64
	ItemName     string
	SKU          string
	Stock        int64
	StockUnit    string
	CurrentPrice decimal.Decimal
	PriceUnit    string
}

// SaleOrder is a sale header with its line quantities pre-summed.
type SaleOrder struct {
	SaleID       int64
	CustomerName string
	OrderedAt    time.Time
	Status       string
	TotalAmount  decimal.Decimal
	ItemQuantity int64
}

// ItemSalesRollup is a per-item aggregate produced by the store itself so the
// row cap can be applied in the query rather than after the fact.
type ItemSalesRollup struct {
	ItemID        int64
	ItemName      string
	SKU           string
	CompanyID     int64
	CompanyName   string
	TotalQuantity int64
	TotalRevenue  decimal.Decimal
	OrderCount    int64
	AvgUnitPrice  decimal.Decimal
	Stock         int64
}

// HourlySaleLine carries the item margin used for profit estimation.
// GrossMargin is a percentage and may be unset on the item.
type HourlySaleLine struct {
	SoldAt      time.Time
	TotalPrice  decimal.Decimal
	GrossMargin decimal.NullDecimal
	Status      string
}

// BrandSaleLine is a sale line attributed to the item's owning company.
type BrandSaleLine struct {
	CompanyID    int64
	CompanyName  string
	SaleID       int64
	CustomerName string
	Quantity     int64
	TotalPrice   decimal.Decimal
	SoldAt       time.Time
	Status       string
}
