package order

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerOrder is what a customer (or the virtual customer simulator)
// submits to the order service. Prices are resolved against the product
// catalog, never trusted from the caller.
type CustomerOrder struct {
	StoreID    string              `json:"storeId"`
	FirstName  string              `json:"firstName"`
	LastName   string              `json:"lastName"`
	LoyaltyID  string              `json:"loyaltyId"`
	OrderItems []CustomerOrderItem `json:"orderItems"`
}

type CustomerOrderItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// OrderSummary is the record that flows through the whole system: published
// on intake, queued on the make line, republished on completion.
type OrderSummary struct {
	OrderID            uuid.UUID          `json:"orderId"`
	StoreID            string             `json:"storeId"`
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	LoyaltyID          string             `json:"loyaltyId"`
	OrderDate          time.Time          `json:"orderDate"`
	OrderCompletedDate *time.Time         `json:"orderCompletedDate,omitempty"`
	OrderItems         []OrderItemSummary `json:"orderItems"`
	OrderTotal         decimal.Decimal    `json:"orderTotal"`
}

type OrderItemSummary struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	ImageURL    string          `json:"imageUrl"`
}

// SortByOrderDate orders summaries oldest first, the order the make line
// serves them in.
func SortByOrderDate(orders []OrderSummary) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
}
