package memory

import "quickmart/internal/domain/model"

type OrderStore = Store[model.Order, *model.Order]

// 起動時は空。seedは履歴を持ち込みたいテスト用。
func NewOrderStore(delays Delays, seed []model.Order) *OrderStore {
	return NewStore[model.Order]("Order", delays, seed)
}
