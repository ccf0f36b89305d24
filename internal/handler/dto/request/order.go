package request

import (
	"reddog/internal/domain/order"
)

type PlaceOrderRequest struct {
	StoreID    string             `json:"storeId" binding:"required"`
	FirstName  string             `json:"firstName" binding:"required"`
	LastName   string             `json:"lastName" binding:"required"`
	LoyaltyID  string             `json:"loyaltyId" binding:"required"`
	OrderItems []OrderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
}

type OrderItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

func (r PlaceOrderRequest) ToDomain() order.CustomerOrder {
	items := make([]order.CustomerOrderItem, 0, len(r.OrderItems))
	for _, item := range r.OrderItems {
		items = append(items, order.CustomerOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return order.CustomerOrder{
		StoreID:    r.StoreID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		LoyaltyID:  r.LoyaltyID,
		OrderItems: items,
	}
}
