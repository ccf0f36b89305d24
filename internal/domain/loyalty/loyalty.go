package loyalty

import "github.com/shopspring/decimal"

// LoyaltySummary is the per-customer ledger record. PointsEarned holds the
// delta from the most recent completed order; PointTotal is the running sum
// and only ever grows.
type LoyaltySummary struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	LoyaltyID    string `json:"loyaltyId"`
	PointsEarned int    `json:"pointsEarned"`
	PointTotal   int    `json:"pointTotal"`
}

// PointsForTotal converts an order total into loyalty points: total × 10,
// rounded half away from zero.
func PointsForTotal(orderTotal decimal.Decimal) int {
	return int(orderTotal.Mul(decimal.NewFromInt(10)).Round(0).IntPart())
}
