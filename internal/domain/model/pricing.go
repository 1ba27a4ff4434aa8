package model

import "github.com/shopspring/decimal"

var (
	// この金額を超えたら配送料無料
	FreeDeliveryThreshold = decimal.NewFromInt(25)
	StandardDeliveryFee   = decimal.RequireFromString("2.99")
)

// 小計に対する配送料
func DeliveryFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(FreeDeliveryThreshold) {
		return decimal.Zero
	}
	return StandardDeliveryFee
}
