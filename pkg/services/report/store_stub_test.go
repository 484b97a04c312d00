package report

import (
	"context"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/shopspring/decimal"
)

// stubStore lets each test preset the projections the engine reads.
type stubStore struct {
	saleLines     []store.SaleLine
	purchaseLines []store.PurchaseLine
	inventory     []store.InventoryRow
	orders        []store.SaleOrder
	rollups       []store.ItemSalesRollup
	hourly        []store.HourlySaleLine
	brandLines    []store.BrandSaleLine
	err           error

	gotStart time.Time
	gotEnd   time.Time
	gotLimit int
}

func (s *stubStore) GetSaleLines(_ context.Context, start, end time.Time) ([]store.SaleLine, error) {
	s.gotStart, s.gotEnd = start, end
	return s.saleLines, s.err
}

func (s *stubStore) GetPurchaseLines(_ context.Context, start, end time.Time) ([]store.PurchaseLine, error) {
	return s.purchaseLines, s.err
}

func (s *stubStore) GetInventory(_ context.Context) ([]store.InventoryRow, error) {
	return s.inventory, s.err
}

func (s *stubStore) GetSaleOrders(_ context.Context, start, end time.Time) ([]store.SaleOrder, error) {
	s.gotStart, s.gotEnd = start, end
	return s.orders, s.err
}

func (s *stubStore) GetTopSellingItems(_ context.Context, start, end time.Time, limit int) ([]store.ItemSalesRollup, error) {
	s.gotStart, s.gotEnd, s.gotLimit = start, end, limit
	return s.rollups, s.err
}

func (s *stubStore) GetHourlySaleLines(_ context.Context, start, end time.Time) ([]store.HourlySaleLine, error) {
	s.gotStart, s.gotEnd = start, end
	return s.hourly, s.err
}

func (s *stubStore) GetBrandSaleLines(_ context.Context) ([]store.BrandSaleLine, error) {
	return s.brandLines, s.err
}

func (s *stubStore) Ping(_ context.Context) error {
	return s.err
}

func newTestService(st *stubStore, now time.Time) *service {
	return &service{
		store: st,
		now:   func() time.Time { return now },
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
