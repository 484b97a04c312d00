package report

import (
	"context"
	"testing"

	"github.com/bo-tools/sales-atlas/pkg/models/domain"
	"github.com/bo-tools/sales-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopItems_PushesLimitToStore(t *testing.T) {
	st := &stubStore{rollups: []store.ItemSalesRollup{
		{
			ItemID:        10,
			ItemName:      "widget",
			SKU:           "SKU-widget",
			CompanyID:     1,
			CompanyName:   "Acme",
			TotalQuantity: 12,
			TotalRevenue:  dec("240"),
			OrderCount:    4,
			AvgUnitPrice:  dec("20"),
			Stock:         7,
		},
	}}
	svc := newTestService(st, day(2024, 6, 1))

	result, err := svc.TopItems(context.Background(), day(2024, 5, 1), day(2024, 5, 31), 10)
	require.NoError(t, err)

	assert.Equal(t, 10, st.gotLimit)
	assert.Equal(t, day(2024, 5, 1), st.gotStart)
	assert.Equal(t, 10, result.Limit)

	require.Len(t, result.Items, 1)
	it := result.Items[0]
	assert.Equal(t, "widget", it.ItemName)
	assert.Equal(t, "Acme", it.CompanyName)
	assert.Equal(t, int64(12), it.TotalQuantity)
	assert.Equal(t, "240", it.TotalRevenue.String())
	assert.Equal(t, int64(4), it.OrderCount)
	assert.Equal(t, "20", it.AverageUnitPrice.String())
	assert.Equal(t, int64(7), it.CurrentStock)
}

func TestTopItems_InvalidLimit(t *testing.T) {
	svc := newTestService(&stubStore{}, day(2024, 6, 1))

	for _, limit := range []int{0, -3} {
		_, err := svc.TopItems(context.Background(), day(2024, 5, 1), day(2024, 5, 31), limit)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestTopItems_InvalidWindow(t *testing.T) {
	svc := newTestService(&stubStore{}, day(2024, 6, 1))

	_, err := svc.TopItems(context.Background(), day(2024, 5, 31), day(2024, 5, 1), 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
