package usecase_test

import (
	"context"
	"testing"

	"quickmart/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(ps []model.Product) []int64 {
	ids := make([]int64, 0, len(ps))
	for _, p := range ps {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestCatalogUsecase_Search_CaseInsensitiveAcrossFields(t *testing.T) {
	uc := newCatalog()
	ctx := context.Background()

	//名前
	got, err := uc.Search(ctx, "BANANA")
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, productIDs(got))

	//カテゴリslugと説明文
	got, err = uc.Search(ctx, "milk")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5}, productIDs(got))

	got, err = uc.Search(ctx, "dairy")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, productIDs(got))

	got, err = uc.Search(ctx, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogUsecase_ByCategory_ExactSlug(t *testing.T) {
	uc := newCatalog()

	got, err := uc.ByCategory(context.Background(), "bakery")
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 6, 7}, productIDs(got))

	got, err = uc.ByCategory(context.Background(), "bak")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalogUsecase_Featured_FirstSix(t *testing.T) {
	uc := newCatalog()

	got, err := uc.Featured(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, productIDs(got))
}

func TestCatalogUsecase_GetCategory_ByIDOrSlug(t *testing.T) {
	uc := newCatalog()
	ctx := context.Background()

	c, err := uc.GetCategory(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "dairy-eggs", c.Slug)

	c, err = uc.GetCategory(ctx, "bakery")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	_, err = uc.GetCategory(ctx, "99")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = uc.GetCategory(ctx, " ")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestCatalogUsecase_GetProduct_NotFound(t *testing.T) {
	uc := newCatalog()

	_, err := uc.GetProduct(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
