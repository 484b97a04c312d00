package report

import (
	"context"
	"testing"
	"time"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseLine(companyID, itemID int64, name string, qty int64, total string, at time.Time, status string) store.PurchaseLine {
	return store.PurchaseLine{
		CompanyID:   companyID,
		CompanyName: "Brand",
		ItemID:      itemID,
		ItemName:    name,
		SKU:         "SKU-" + name,
		Quantity:    qty,
		TotalPrice:  dec(total),
		PurchasedAt: at,
		Status:      status,
	}
}

func TestProfit_RevenueVersusWindowSpend(t *testing.T) {
	at := day(2024, 2, 10)
	st := &stubStore{
		saleLines: []store.SaleLine{
			saleLine(1, 10, "widget", 4, "25", "100", at, store.StatusConfirmed),
		},
		purchaseLines: []store.PurchaseLine{
			purchaseLine(1, 10, "widget", 10, "60", at, store.StatusDelivered),
		},
	}
	svc := newTestService(st, day(2024, 3, 1))

	result, err := svc.Profit(context.Background(), day(2024, 2, 1), day(2024, 2, 28))
	require.NoError(t, err)
	require.Len(t, result.Companies, 1)

	c := result.Companies[1]
	assert.Equal(t, "100", c.TotalRevenue.String())
	assert.Equal(t, "60", c.TotalCost.String())
	assert.Equal(t, "40", c.GrossProfit.String())
	assert.InDelta(t, 40.0, c.ProfitMargin, 1e-9)

	require.Len(t, c.Items, 1)
	it := c.Items[0]
	assert.Equal(t, "widget", it.ItemName)
	assert.Equal(t, "40", it.Profit.String())
	assert.Equal(t, int64(4), it.SoldQuantity)
	assert.Equal(t, int64(10), it.PurchasedQuantity)
}

func TestProfit_NoPurchasesInWindow(t *testing.T) {
	at := day(2024, 2, 10)
	st := &stubStore{
		saleLines: []store.SaleLine{
			saleLine(1, 10, "widget", 2, "15", "30", at, store.StatusConfirmed),
		},
	}
	svc := newTestService(st, day(2024, 3, 1))

	result, err := svc.Profit(context.Background(), day(2024, 2, 1), day(2024, 2, 28))
	require.NoError(t, err)

	c := result.Companies[1]
	assert.True(t, c.TotalCost.IsZero())
	assert.Equal(t, "30", c.GrossProfit.String())
	assert.InDelta(t, 100.0, c.ProfitMargin, 1e-9)
	assert.True(t, c.Items[0].Cost.IsZero())
	assert.Equal(t, int64(0), c.Items[0].PurchasedQuantity)
}

func TestProfit_PurchasesOnlyCompanyExcluded(t *testing.T) {
	at := day(2024, 2, 10)
	st := &stubStore{
		saleLines: []store.SaleLine{
			saleLine(1, 10, "widget", 1, "5", "5", at, store.StatusConfirmed),
		},
		purchaseLines: []store.PurchaseLine{
			purchaseLine(2, 20, "bolt", 100, "40", at, store.StatusDelivered),
		},
	}
	svc := newTestService(st, day(2024, 3, 1))

	result, err := svc.Profit(context.Background(), day(2024, 2, 1), day(2024, 2, 28))
	require.NoError(t, err)
	assert.Len(t, result.Companies, 1)
	assert.NotContains(t, result.Companies, int64(2))
}

func TestProfit_CancelledLinesExcluded(t *testing.T) {
	at := day(2024, 2, 10)
	st := &stubStore{
		saleLines: []store.SaleLine{
			saleLine(1, 10, "widget", 1, "50", "50", at, store.StatusConfirmed),
			saleLine(1, 10, "widget", 9, "50", "450", at, store.StatusCancelled),
		},
		purchaseLines: []store.PurchaseLine{
			purchaseLine(1, 10, "widget", 5, "20", at, store.StatusDelivered),
			purchaseLine(1, 10, "widget", 5, "20", at, store.StatusCancelled),
		},
	}
	svc := newTestService(st, day(2024, 3, 1))

	result, err := svc.Profit(context.Background(), day(2024, 2, 1), day(2024, 2, 28))
	require.NoError(t, err)

	c := result.Companies[1]
	assert.Equal(t, "50", c.TotalRevenue.String())
	assert.Equal(t, "20", c.TotalCost.String())
	assert.Equal(t, int64(5), c.Items[0].PurchasedQuantity)
}

func TestProfit_ZeroRevenueMargin(t *testing.T) {
	assert.Equal(t, 0.0, marginPercent(dec("-10"), dec("0")))
	assert.Equal(t, 0.0, marginPercent(dec("5"), dec("-1")))
	assert.InDelta(t, 25.0, marginPercent(dec("25"), dec("100")), 1e-9)
}

func TestProfit_InvalidWindow(t *testing.T) {
	svc := newTestService(&stubStore{}, day(2024, 3, 1))

	_, err := svc.Profit(context.Background(), day(2024, 2, 28), day(2024, 2, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
