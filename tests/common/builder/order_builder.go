//go:build unit || integration

package builder

import (
	"time"

	"reddog/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderSummaryBuilder struct {
	summary order.OrderSummary
}

func NewOrderSummaryBuilder() *OrderSummaryBuilder {
	return &OrderSummaryBuilder{
		summary: order.OrderSummary{
			OrderID:   uuid.New(),
			StoreID:   "Redmond",
			FirstName: "Ada",
			LastName:  "Lovelace",
			LoyaltyID: "42",
			OrderDate: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			OrderItems: []order.OrderItemSummary{
				{
					ProductID:   1,
					ProductName: "Latte",
					Quantity:    2,
					UnitCost:    decimal.RequireFromString("1.50"),
					UnitPrice:   decimal.RequireFromString("5.00"),
				},
			},
			OrderTotal: decimal.RequireFromString("10.00"),
		},
	}
}

func (b *OrderSummaryBuilder) WithOrderID(id uuid.UUID) *OrderSummaryBuilder {
	b.summary.OrderID = id
	return b
}

func (b *OrderSummaryBuilder) WithStoreID(storeID string) *OrderSummaryBuilder {
	b.summary.StoreID = storeID
	return b
}

func (b *OrderSummaryBuilder) WithLoyaltyID(loyaltyID string) *OrderSummaryBuilder {
	b.summary.LoyaltyID = loyaltyID
	return b
}

func (b *OrderSummaryBuilder) WithOrderDate(t time.Time) *OrderSummaryBuilder {
	b.summary.OrderDate = t
	return b
}

func (b *OrderSummaryBuilder) WithOrderTotal(total string) *OrderSummaryBuilder {
	b.summary.OrderTotal = decimal.RequireFromString(total)
	return b
}

func (b *OrderSummaryBuilder) WithItems(items ...order.OrderItemSummary) *OrderSummaryBuilder {
	b.summary.OrderItems = items
	return b
}

func (b *OrderSummaryBuilder) Build() order.OrderSummary {
	return b.summary
}
