package memory

import "quickmart/internal/domain/model"

type ProductStore = Store[model.Product, *model.Product]

func NewProductStore(delays Delays, seed []model.Product) *ProductStore {
	return NewStore[model.Product]("Product", delays, seed)
}
