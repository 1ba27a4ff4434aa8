package repository

import "quickmart/internal/domain/model"

// セッションごとのカート。1セッションにつき1つ。
type CartRepository interface {
	GetOrCreate(sessionID string) *model.Cart
	Find(sessionID string) (*model.Cart, error)
}
