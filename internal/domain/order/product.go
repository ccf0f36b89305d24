package order

import "github.com/shopspring/decimal"

type Product struct {
	ProductID   int             `json:"productId"`
	ProductName string          `json:"productName"`
	Description string          `json:"description"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	ImageURL    string          `json:"imageUrl"`
}

// Catalog returns the static demo product list. A real deployment would load
// this from a product service; the sample keeps it in code.
func Catalog() []Product {
	return []Product{
		{ProductID: 1, ProductName: "Drip Coffee", Description: "Classic drip brew", UnitCost: dec("1.00"), UnitPrice: dec("2.20"), ImageURL: "img/coffee-drip.jpg"},
		{ProductID: 2, ProductName: "Latte", Description: "Espresso with steamed milk", UnitCost: dec("1.50"), UnitPrice: dec("4.50"), ImageURL: "img/coffee-latte.jpg"},
		{ProductID: 3, ProductName: "Cappuccino", Description: "Espresso with foamed milk", UnitCost: dec("1.50"), UnitPrice: dec("4.00"), ImageURL: "img/coffee-cappuccino.jpg"},
		{ProductID: 4, ProductName: "Espresso", Description: "Double shot", UnitCost: dec("0.80"), UnitPrice: dec("3.00"), ImageURL: "img/coffee-espresso.jpg"},
		{ProductID: 5, ProductName: "Americano", Description: "Espresso with hot water", UnitCost: dec("0.90"), UnitPrice: dec("3.20"), ImageURL: "img/coffee-americano.jpg"},
		{ProductID: 6, ProductName: "Cold Brew", Description: "Slow-steeped cold coffee", UnitCost: dec("1.20"), UnitPrice: dec("4.20"), ImageURL: "img/coffee-coldbrew.jpg"},
		{ProductID: 7, ProductName: "Mocha", Description: "Espresso with chocolate", UnitCost: dec("1.70"), UnitPrice: dec("4.80"), ImageURL: "img/coffee-mocha.jpg"},
		{ProductID: 8, ProductName: "Chai Latte", Description: "Spiced tea with milk", UnitCost: dec("1.30"), UnitPrice: dec("4.10"), ImageURL: "img/tea-chai.jpg"},
		{ProductID: 9, ProductName: "Croissant", Description: "Butter croissant", UnitCost: dec("0.90"), UnitPrice: dec("3.50"), ImageURL: "img/food-croissant.jpg"},
		{ProductID: 10, ProductName: "Blueberry Muffin", Description: "Fresh-baked muffin", UnitCost: dec("0.80"), UnitPrice: dec("3.25"), ImageURL: "img/food-muffin.jpg"},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
