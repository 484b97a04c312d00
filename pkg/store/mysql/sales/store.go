package sales

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/store"
)

// Store exposes the read projections the reporting engine aggregates over.
// Every query excludes cancelled transactions before any aggregation happens.
type Store interface {
	GetSaleLines(ctx context.Context, start, end time.Time) ([]store.SaleLine, error)
	GetPurchaseLines(ctx context.Context, start, end time.Time) ([]store.PurchaseLine, error)
	GetInventory(ctx context.Context) ([]store.InventoryRow, error)
	GetSaleOrders(ctx context.Context, start, end time.Time) ([]store.SaleOrder, error)
	GetTopSellingItems(ctx context.Context, start, end time.Time, limit int) ([]store.ItemSalesRollup, error)
	GetHourlySaleLines(ctx context.Context, start, end time.Time) ([]store.HourlySaleLine, error)
	GetBrandSaleLines(ctx context.Context) ([]store.BrandSaleLine, error)
	Ping(ctx context.Context) error
}

type salesStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &salesStore{db: db}, nil
}

func (s *salesStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *salesStore) GetSaleLines(ctx context.Context, start, end time.Time) ([]store.SaleLine, error) {
	query := `
		SELECT c.id, c.name, i.id, i.name, i.sku,
			si.quantity, si.unit_price, si.total_price, s.date, s.status
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		JOIN companies c ON c.id = i.company_id
		WHERE s.date BETWEEN ? AND ?
			AND s.status != 'cancelled'
		ORDER BY s.date, si.id
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sale lines: %w", err)
	}
	defer rows.Close()

	lines := make([]store.SaleLine, 0)
	for rows.Next() {
		var l store.SaleLine
		if err := rows.Scan(
			&l.CompanyID, &l.CompanyName, &l.ItemID, &l.ItemName, &l.SKU,
			&l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.SoldAt, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *salesStore) GetPurchaseLines(ctx context.Context, start, end time.Time) ([]store.PurchaseLine, error) {
	query := `
		SELECT c.id, c.name, i.id, i.name, i.sku,
			pi.quantity, pi.unit_price, pi.total_price, p.date, p.status
		FROM purchases p
		JOIN purchase_items pi ON pi.purchase_id = p.id
		JOIN items i ON i.id = pi.item_id
		JOIN companies c ON c.id = i.company_id
		WHERE p.date BETWEEN ? AND ?
			AND p.status != 'cancelled'
		ORDER BY p.date, pi.id
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query purchase lines: %w", err)
	}
	defer rows.Close()

	lines := make([]store.PurchaseLine, 0)
	for rows.Next() {
		var l store.PurchaseLine
		if err := rows.Scan(
			&l.CompanyID, &l.CompanyName, &l.ItemID, &l.ItemName, &l.SKU,
			&l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.PurchasedAt, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("scan purchase line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *salesStore) GetInventory(ctx context.Context) ([]store.InventoryRow, error) {
	query := `
		SELECT c.id, c.name, i.id, i.name, i.sku,
			i.stock, i.stock_unit, i.price, i.price_unit
		FROM items i
		JOIN companies c ON c.id = i.company_id
		ORDER BY c.id, i.id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	inventory := make([]store.InventoryRow, 0)
	for rows.Next() {
		var r store.InventoryRow
		if err := rows.Scan(
			&r.CompanyID, &r.CompanyName, &r.ItemID, &r.ItemName, &r.SKU,
			&r.Stock, &r.StockUnit, &r.CurrentPrice, &r.PriceUnit,
		); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		inventory = append(inventory, r)
	}
	return inventory, rows.Err()
}

func (s *salesStore) GetSaleOrders(ctx context.Context, start, end time.Time) ([]store.SaleOrder, error) {
	query := `
		SELECT s.id, s.customer_name, s.date, s.status, s.total_amount,
			COALESCE(SUM(si.quantity), 0)
		FROM sales s
		LEFT JOIN sale_items si ON si.sale_id = s.id
		WHERE s.date BETWEEN ? AND ?
			AND s.status != 'cancelled'
		GROUP BY s.id, s.customer_name, s.date, s.status, s.total_amount
		ORDER BY s.date
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sale orders: %w", err)
	}
	defer rows.Close()

	orders := make([]store.SaleOrder, 0)
	for rows.Next() {
		var o store.SaleOrder
		if err := rows.Scan(
			&o.SaleID, &o.CustomerName, &o.OrderedAt, &o.Status, &o.TotalAmount, &o.ItemQuantity,
		); err != nil {
			return nil, fmt.Errorf("scan sale order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// GetTopSellingItems groups and caps in the query itself so the database, not
// the engine, bounds the result set.
func (s *salesStore) GetTopSellingItems(
	ctx context.Context,
	start, end time.Time,
	limit int,
) ([]store.ItemSalesRollup, error) {
	query := `
		SELECT i.id, i.name, i.sku, c.id, c.name,
			SUM(si.quantity) AS total_quantity,
			SUM(si.total_price) AS total_revenue,
			COUNT(DISTINCT s.id) AS order_count,
			AVG(si.unit_price) AS avg_unit_price,
			i.stock
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		JOIN companies c ON c.id = i.company_id
		WHERE s.date BETWEEN ? AND ?
			AND s.status != 'cancelled'
		GROUP BY i.id, i.name, i.sku, c.id, c.name, i.stock
		ORDER BY total_quantity DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, start, end, limit)
	if err != nil {
		return nil, fmt.Errorf("query top selling items: %w", err)
	}
	defer rows.Close()

	items := make([]store.ItemSalesRollup, 0)
	for rows.Next() {
		var r store.ItemSalesRollup
		if err := rows.Scan(
			&r.ItemID, &r.ItemName, &r.SKU, &r.CompanyID, &r.CompanyName,
			&r.TotalQuantity, &r.TotalRevenue, &r.OrderCount, &r.AvgUnitPrice, &r.Stock,
		); err != nil {
			return nil, fmt.Errorf("scan item rollup: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (s *salesStore) GetHourlySaleLines(ctx context.Context, start, end time.Time) ([]store.HourlySaleLine, error) {
	query := `
		SELECT s.date, si.total_price, i.gross_margin, s.status
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		WHERE s.date BETWEEN ? AND ?
			AND s.status != 'cancelled'
		ORDER BY s.date
	`
	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("query hourly sale lines: %w", err)
	}
	defer rows.Close()

	lines := make([]store.HourlySaleLine, 0)
	for rows.Next() {
		var l store.HourlySaleLine
		if err := rows.Scan(&l.SoldAt, &l.TotalPrice, &l.GrossMargin, &l.Status); err != nil {
			return nil, fmt.Errorf("scan hourly sale line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (s *salesStore) GetBrandSaleLines(ctx context.Context) ([]store.BrandSaleLine, error) {
	query := `
		SELECT c.id, c.name, s.id, s.customer_name,
			si.quantity, si.total_price, s.date, s.status
		FROM sales s
		JOIN sale_items si ON si.sale_id = s.id
		JOIN items i ON i.id = si.item_id
		JOIN companies c ON c.id = i.company_id
		WHERE s.status != 'cancelled'
		ORDER BY s.date
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query brand sale lines: %w", err)
	}
	defer rows.Close()

	lines := make([]store.BrandSaleLine, 0)
	for rows.Next() {
		var l store.BrandSaleLine
		if err := rows.Scan(
			&l.CompanyID, &l.CompanyName, &l.SaleID, &l.CustomerName,
			&l.Quantity, &l.TotalPrice, &l.SoldAt, &l.Status,
		); err != nil {
			return nil, fmt.Errorf("scan brand sale line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
