package repository

import (
	"context"

	"quickmart/internal/domain/model"
)

type CategoryRepository interface {
	Repository[model.Category]
	GetBySlug(ctx context.Context, slug string) (model.Category, error)
}
