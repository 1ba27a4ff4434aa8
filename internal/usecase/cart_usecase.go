package usecase

import (
	"context"
	"errors"
	"strings"

	"quickmart/internal/domain/model"
	repo "quickmart/internal/repository"

	"github.com/shopspring/decimal"
)

// 商品の取得だけを約束（CatalogUsecaseが満たす）
type ProductFinder interface {
	GetProduct(ctx context.Context, id int64) (model.Product, error)
}

// CartUsecase はセッションのカート操作です。
// 商品の取得だけが待ちを伴い、カートへの反映は同期的に行う。
type CartUsecase struct {
	carts    repo.CartRepository
	products ProductFinder
}

// DI
func NewCartUsecase(carts repo.CartRepository, products ProductFinder) *CartUsecase {
	return &CartUsecase{
		carts:    carts,
		products: products,
	}
}

// カートの中身と金額の内訳
type CartOutput struct {
	Items       []model.CartLine `json:"items"`
	TotalItems  int64            `json:"total_items"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	DeliveryFee decimal.Decimal  `json:"delivery_fee"`
	Total       decimal.Decimal  `json:"total"`
}

func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartOutput, error) {
	cart, err := u.find(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	return buildCartOutput(cart), nil
}

// Cart returns the session's live aggregate for checkout. A session that
// never added anything gets an empty cart that is not stored.
func (u *CartUsecase) Cart(sessionID string) (*model.Cart, error) {
	return u.find(sessionID)
}

// カートに追加（同一商品は数量加算）。
// 在庫切れの商品は追加できない。カートは最初の追加で作る。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, productID int64, qty int64) (CartOutput, error) {
	if err := validateSession(sessionID); err != nil {
		return CartOutput{}, err
	}
	if productID <= 0 {
		return CartOutput{}, model.NewValidation("invalid product_id")
	}
	if qty < 1 || qty > model.MaxLineQuantity {
		return CartOutput{}, model.NewValidation("invalid quantity")
	}

	p, err := u.products.GetProduct(ctx, productID)
	if err != nil {
		return CartOutput{}, err
	}
	if !p.InStock {
		return CartOutput{}, model.NewValidation("out of stock")
	}

	//取得が終わった時点のカートに加算する（後勝ち）
	cart := u.carts.GetOrCreate(sessionID)
	if err := cart.AddItem(p, qty); err != nil {
		return CartOutput{}, err
	}
	return buildCartOutput(cart), nil
}

// 0以下なら明細を削除
func (u *CartUsecase) UpdateQuantity(ctx context.Context, sessionID string, productID int64, qty int64) (CartOutput, error) {
	cart, err := u.find(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	if err := cart.SetQuantity(productID, qty); err != nil {
		return CartOutput{}, err
	}
	return buildCartOutput(cart), nil
}

func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, productID int64) (CartOutput, error) {
	cart, err := u.find(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	cart.RemoveItem(productID)
	return buildCartOutput(cart), nil
}

func (u *CartUsecase) Clear(ctx context.Context, sessionID string) (CartOutput, error) {
	cart, err := u.find(sessionID)
	if err != nil {
		return CartOutput{}, err
	}
	cart.Clear()
	return buildCartOutput(cart), nil
}

// 保存済みのカート。無ければ保存しない空のカートを返す。
func (u *CartUsecase) find(sessionID string) (*model.Cart, error) {
	if err := validateSession(sessionID); err != nil {
		return nil, err
	}
	cart, err := u.carts.Find(sessionID)
	if errors.Is(err, model.ErrNotFound) {
		return model.NewCart(), nil
	}
	return cart, err
}

func validateSession(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return model.NewValidation("session required")
	}
	return nil
}

func buildCartOutput(cart *model.Cart) CartOutput {
	lines, totals := cart.Snapshot()
	fee := decimal.Zero
	if len(lines) > 0 {
		fee = model.DeliveryFee(totals.TotalPrice)
	}
	return CartOutput{
		Items:       lines,
		TotalItems:  totals.TotalItems,
		Subtotal:    totals.TotalPrice,
		DeliveryFee: fee,
		Total:       totals.TotalPrice.Add(fee),
	}
}
