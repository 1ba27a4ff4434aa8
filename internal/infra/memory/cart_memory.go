package memory

import (
	"sync"

	"quickmart/internal/domain/model"
)

// セッションID → カート
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*model.Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: map[string]*model.Cart{}}
}

// 無ければ空のカートを作る
func (s *CartStore) GetOrCreate(sessionID string) *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[sessionID]; ok {
		return c
	}
	c := model.NewCart()
	s.carts[sessionID] = c
	return c
}

func (s *CartStore) Find(sessionID string) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[sessionID]
	if !ok {
		return nil, model.NewNotFound("Cart not found")
	}
	return c, nil
}
