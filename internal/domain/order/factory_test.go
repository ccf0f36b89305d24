//go:build unit

package order_test

import (
	"testing"
	"time"

	"reddog/internal/domain/order"
	"reddog/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	catalog := []order.Product{
		{ProductID: 1, ProductName: "Latte", UnitCost: decimal.RequireFromString("1.50"), UnitPrice: decimal.RequireFromString("5.00")},
		{ProductID: 2, ProductName: "Espresso", UnitCost: decimal.RequireFromString("0.80"), UnitPrice: decimal.RequireFromString("3.00")},
	}
	factory := order.NewFactory(clock.NewMockClock(now), catalog)

	t.Run("computes total from catalog prices", func(t *testing.T) {
		summary, err := factory.BuildSummary(order.CustomerOrder{
			StoreID:   "Redmond",
			FirstName: "Ada",
			LastName:  "Lovelace",
			LoyaltyID: "42",
			OrderItems: []order.CustomerOrderItem{
				{ProductID: 1, Quantity: 2},
				{ProductID: 2, Quantity: 1},
			},
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, summary.OrderID)
		assert.Equal(t, "Redmond", summary.StoreID)
		assert.Equal(t, now, summary.OrderDate)
		assert.Nil(t, summary.OrderCompletedDate)
		require.Len(t, summary.OrderItems, 2)
		assert.True(t, summary.OrderTotal.Equal(decimal.RequireFromString("13.00")),
			"expected 13.00, got %s", summary.OrderTotal)
	})

	t.Run("decimal math stays exact", func(t *testing.T) {
		summary, err := factory.BuildSummary(order.CustomerOrder{
			StoreID:    "Redmond",
			OrderItems: []order.CustomerOrderItem{{ProductID: 1, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, "10", summary.OrderTotal.String())
	})

	t.Run("skips unknown products", func(t *testing.T) {
		summary, err := factory.BuildSummary(order.CustomerOrder{
			StoreID: "Redmond",
			OrderItems: []order.CustomerOrderItem{
				{ProductID: 99, Quantity: 1},
				{ProductID: 2, Quantity: 1},
			},
		})
		require.NoError(t, err)
		require.Len(t, summary.OrderItems, 1)
		assert.Equal(t, "Espresso", summary.OrderItems[0].ProductName)
	})

	t.Run("all items unknown is an error", func(t *testing.T) {
		_, err := factory.BuildSummary(order.CustomerOrder{
			StoreID:    "Redmond",
			OrderItems: []order.CustomerOrderItem{{ProductID: 99, Quantity: 1}},
		})
		assert.ErrorIs(t, err, order.ErrNoOrderItems)
	})

	t.Run("unique order ids", func(t *testing.T) {
		co := order.CustomerOrder{
			StoreID:    "Redmond",
			OrderItems: []order.CustomerOrderItem{{ProductID: 1, Quantity: 1}},
		}
		first, err := factory.BuildSummary(co)
		require.NoError(t, err)
		second, err := factory.BuildSummary(co)
		require.NoError(t, err)
		assert.NotEqual(t, first.OrderID, second.OrderID)
	})
}

func TestSortByOrderDate(t *testing.T) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	orders := []order.OrderSummary{
		{OrderID: uuid.New(), OrderDate: base.Add(2 * time.Minute)},
		{OrderID: uuid.New(), OrderDate: base},
		{OrderID: uuid.New(), OrderDate: base.Add(time.Minute)},
	}

	order.SortByOrderDate(orders)

	assert.Equal(t, base, orders[0].OrderDate)
	assert.Equal(t, base.Add(time.Minute), orders[1].OrderDate)
	assert.Equal(t, base.Add(2*time.Minute), orders[2].OrderDate)
}
