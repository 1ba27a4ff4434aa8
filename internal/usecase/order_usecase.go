package usecase

import (
	"context"
	"time"

	"quickmart/internal/domain/model"
	repo "quickmart/internal/repository"

	"github.com/shopspring/decimal"
)

// 現在の時間
type Clock interface {
	Now() time.Time
}

// OrderUsecase is the order lifecycle: confirmed → preparing → delivering →
// delivered. It never advances a status on its own; an external caller
// (the dispatcher, an operator) drives UpdateStatus.
type OrderUsecase struct {
	orders repo.OrderRepository
	clock  Clock
}

// DI
func NewOrderUsecase(orders repo.OrderRepository, clock Clock) *OrderUsecase {
	return &OrderUsecase{
		orders: orders,
		clock:  clock,
	}
}

// 注文作成の入力。Itemsはカートのスナップショット。
type OrderRequest struct {
	Items         []model.CartLine
	Total         decimal.Decimal
	Address       string
	CustomerName  string
	CustomerPhone string
	Instructions  string
	PaymentMethod model.PaymentMethod
	DeliveryTime  string
}

func (u *OrderUsecase) Create(ctx context.Context, req OrderRequest) (model.Order, error) {
	if len(req.Items) == 0 {
		return model.Order{}, model.NewValidation("order has no items")
	}
	if !req.Total.IsPositive() {
		return model.Order{}, model.NewValidation("total must be positive")
	}

	items := make([]model.CartLine, len(req.Items))
	copy(items, req.Items)

	now := u.clock.Now()
	return u.orders.Create(ctx, model.Order{
		Items:             items,
		Total:             req.Total,
		Status:            model.OrderStatusConfirmed,
		DeliveryTime:      req.DeliveryTime,
		Address:           req.Address,
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		Instructions:      req.Instructions,
		PaymentMethod:     req.PaymentMethod,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(model.ParseDeliveryTime(req.DeliveryTime)),
	})
}

// UpdateStatus sets status without checking that it follows the current one.
// Moving to delivered stamps ActualDelivery; other statuses leave it alone.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	return u.orders.Update(ctx, id, func(o *model.Order) {
		o.Status = status
		if status == model.OrderStatusDelivered {
			at := u.clock.Now()
			o.ActualDelivery = &at
		}
	})
}

func (u *OrderUsecase) GetByID(ctx context.Context, id int64) (model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// 注文履歴（作成順）
func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.GetAll(ctx)
}
