package memory

import (
	"context"
	"strings"

	"quickmart/internal/domain/model"
)

type CategoryStore struct {
	*Store[model.Category, *model.Category]
}

// DI
func NewCategoryStore(delays Delays, seed []model.Category) *CategoryStore {
	return &CategoryStore{Store: NewStore[model.Category]("Category", delays, seed)}
}

func (s *CategoryStore) GetBySlug(ctx context.Context, slug string) (model.Category, error) {
	return s.find(ctx, func(c *model.Category) bool { return c.Slug == slug })
}

// slugの重複は作らせない
func (s *CategoryStore) Create(ctx context.Context, c model.Category) (model.Category, error) {
	if err := wait(ctx, s.delays.Create); err != nil {
		return model.Category{}, err
	}
	slug := strings.TrimSpace(c.Slug)
	if slug == "" {
		return model.Category{}, model.NewValidation("slug required")
	}
	c.Slug = slug

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Slug == slug {
			return model.Category{}, model.NewValidation("slug already exists")
		}
	}
	return s.insertLocked(c), nil
}

// slugは作成後に変更しない
func (s *CategoryStore) Update(ctx context.Context, id int64, patch func(*model.Category)) (model.Category, error) {
	return s.Store.Update(ctx, id, func(c *model.Category) {
		slug := c.Slug
		if patch != nil {
			patch(c)
		}
		c.Slug = slug
	})
}
