package usecase

import (
	"context"
	"errors"
	"strings"

	"quickmart/internal/domain/model"
)

// 商品の作成・更新・削除（管理画面向け）

func (u *CatalogUsecase) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return model.Product{}, model.NewValidation("name is required")
	}
	if p.Price.IsNegative() {
		return model.Product{}, model.NewValidation("price must not be negative")
	}
	if err := u.ensureCategory(ctx, p.Category); err != nil {
		return model.Product{}, err
	}

	//IDは採番に任せる
	p.ID = 0
	return u.products.Create(ctx, p)
}

func (u *CatalogUsecase) UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (model.Product, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return model.Product{}, model.NewValidation("name is required")
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return model.Product{}, model.NewValidation("price must not be negative")
	}
	if patch.Category != nil {
		if err := u.ensureCategory(ctx, *patch.Category); err != nil {
			return model.Product{}, err
		}
	}
	return u.products.Update(ctx, id, patch.Apply)
}

func (u *CatalogUsecase) DeleteProduct(ctx context.Context, id int64) (model.Product, error) {
	return u.products.Delete(ctx, id)
}

// 存在しないカテゴリはValidation扱い
func (u *CatalogUsecase) ensureCategory(ctx context.Context, slug string) error {
	if strings.TrimSpace(slug) == "" {
		return model.NewValidation("category is required")
	}
	if _, err := u.categories.GetBySlug(ctx, slug); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewValidation("unknown category " + slug)
		}
		return err
	}
	return nil
}
