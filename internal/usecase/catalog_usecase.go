package usecase

import (
	"context"
	"strconv"
	"strings"

	"quickmart/internal/domain/model"
	repo "quickmart/internal/repository"
)

// おすすめとして返す件数
const FeaturedLimit = 6

// CatalogUsecase は商品とカテゴリの読み取り専用の窓口です。
type CatalogUsecase struct {
	categories repo.CategoryRepository
	products   repo.ProductRepository
}

// DI
func NewCatalogUsecase(categories repo.CategoryRepository, products repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{
		categories: categories,
		products:   products,
	}
}

func (u *CatalogUsecase) GetAllCategories(ctx context.Context) ([]model.Category, error) {
	return u.categories.GetAll(ctx)
}

// 数字ならID、それ以外はslugとして引く
func (u *CatalogUsecase) GetCategory(ctx context.Context, idOrSlug string) (model.Category, error) {
	key := strings.TrimSpace(idOrSlug)
	if key == "" {
		return model.Category{}, model.NewValidation("invalid category")
	}
	if id, err := strconv.ParseInt(key, 10, 64); err == nil {
		return u.categories.GetByID(ctx, id)
	}
	return u.categories.GetBySlug(ctx, key)
}

func (u *CatalogUsecase) GetAllProducts(ctx context.Context) ([]model.Product, error) {
	return u.products.GetAll(ctx)
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, id int64) (model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// 名前・カテゴリslug・説明文の部分一致（大文字小文字は無視）。
// 空文字は全件を返すが、呼び出し側はそれに頼らないこと。
func (u *CatalogUsecase) Search(ctx context.Context, q string) ([]model.Product, error) {
	term := strings.ToLower(q)
	return u.filter(ctx, func(p model.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	})
}

func (u *CatalogUsecase) ByCategory(ctx context.Context, slug string) ([]model.Product, error) {
	return u.filter(ctx, func(p model.Product) bool {
		return p.Category == slug
	})
}

// Featured returns the first FeaturedLimit products in repository order.
// It is a fixed placeholder, not a ranking.
func (u *CatalogUsecase) Featured(ctx context.Context) ([]model.Product, error) {
	all, err := u.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) > FeaturedLimit {
		all = all[:FeaturedLimit]
	}
	return all, nil
}

func (u *CatalogUsecase) filter(ctx context.Context, keep func(model.Product) bool) ([]model.Product, error) {
	all, err := u.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(all))
	for _, p := range all {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out, nil
}
