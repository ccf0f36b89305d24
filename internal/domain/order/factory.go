package order

import (
	"errors"

	"reddog/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNoOrderItems = errors.New("order contains no known products")

type Factory struct {
	clock   clock.Clock
	catalog []Product
}

func NewFactory(clk clock.Clock, catalog []Product) *Factory {
	return &Factory{clock: clk, catalog: catalog}
}

// BuildSummary assigns the order id and date, resolves every item against
// the catalog and computes the total as Σ(unitPrice × quantity). Items that
// reference an unknown product are skipped, matching how the intake treats
// a stale client catalog. The total is fixed here and never recomputed
// downstream.
func (f *Factory) BuildSummary(o CustomerOrder) (OrderSummary, error) {
	total := decimal.Zero
	items := make([]OrderItemSummary, 0, len(o.OrderItems))

	for _, item := range o.OrderItems {
		product, ok := f.findProduct(item.ProductID)
		if !ok {
			continue
		}

		total = total.Add(product.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
		items = append(items, OrderItemSummary{
			ProductID:   product.ProductID,
			ProductName: product.ProductName,
			Quantity:    item.Quantity,
			UnitCost:    product.UnitCost,
			UnitPrice:   product.UnitPrice,
			ImageURL:    product.ImageURL,
		})
	}

	if len(items) == 0 {
		return OrderSummary{}, ErrNoOrderItems
	}

	return OrderSummary{
		OrderID:    uuid.New(),
		StoreID:    o.StoreID,
		FirstName:  o.FirstName,
		LastName:   o.LastName,
		LoyaltyID:  o.LoyaltyID,
		OrderDate:  f.clock.Now().UTC(),
		OrderItems: items,
		OrderTotal: total,
	}, nil
}

func (f *Factory) findProduct(id int) (Product, bool) {
	for _, p := range f.catalog {
		if p.ProductID == id {
			return p, true
		}
	}
	return Product{}, false
}
