package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func inventoryRow(companyID, itemID int64, name string, stock int64, price string) store.InventoryRow {
	return store.InventoryRow{
		CompanyID:    companyID,
		CompanyName:  "Brand",
		ItemID:       itemID,
		ItemName:     name,
		SKU:          "SKU-" + name,
		Stock:        stock,
		StockUnit:    "pcs",
		CurrentPrice: dec(price),
		PriceUnit:    "EUR",
	}
}

func TestInventory_StockValueAndLowStock(t *testing.T) {
	st := &stubStore{inventory: []store.InventoryRow{
		inventoryRow(1, 10, "widget", 9, "4.50"),
		inventoryRow(1, 11, "gadget", 10, "2"),
		inventoryRow(1, 12, "gizmo", 0, "100"),
	}}
	svc := newTestService(st, time.Now())

	result, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Companies, 1)

	c := result.Companies[1]
	assert.Equal(t, int64(3), c.TotalItems)
	// 9*4.50 + 10*2 + 0*100
	assert.Equal(t, "60.5", c.TotalStockValue.String())
	require.Len(t, c.Items, 3)
	assert.Equal(t, "40.5", c.Items[0].StockValue.String())
	assert.Equal(t, "pcs", c.Items[0].StockUnit)
	assert.Equal(t, "EUR", c.Items[0].PriceUnit)

	// Stock of exactly 10 is not low; 9 and 0 are.
	require.Len(t, c.LowStockItems, 2)
	assert.Equal(t, "widget", c.LowStockItems[0].ItemName)
	assert.Equal(t, int64(9), c.LowStockItems[0].CurrentStock)
	assert.Equal(t, "gizmo", c.LowStockItems[1].ItemName)
}

func TestInventory_Empty(t *testing.T) {
	svc := newTestService(&stubStore{}, time.Now())

	result, err := svc.Inventory(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Companies)
}

func TestInventory_StoreFailure(t *testing.T) {
	storeErr := errors.New("table missing")
	svc := newTestService(&stubStore{err: storeErr}, time.Now())

	_, err := svc.Inventory(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
