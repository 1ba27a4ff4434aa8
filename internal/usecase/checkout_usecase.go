package usecase

import (
	"context"
	"strings"

	"quickmart/internal/domain/model"
)

// 注文時に表示する配達目安
const DefaultDeliveryTime = "12 mins"

// 注文作成だけを約束（OrderUsecaseが満たす）
type OrderCreator interface {
	Create(ctx context.Context, req OrderRequest) (model.Order, error)
}

// CheckoutUsecase はカートと配送先から注文を確定します。
type CheckoutUsecase struct {
	orders OrderCreator
}

// DI
func NewCheckoutUsecase(orders OrderCreator) *CheckoutUsecase {
	return &CheckoutUsecase{orders: orders}
}

// 成功したらカートを空にする。失敗時はカートに触らない。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, cart *model.Cart, delivery model.DeliveryInfo, paymentMethod string) (model.Order, error) {
	if strings.TrimSpace(delivery.Name) == "" ||
		strings.TrimSpace(delivery.Phone) == "" ||
		strings.TrimSpace(delivery.Address) == "" {
		return model.Order{}, model.NewValidation("please fill in all required delivery details")
	}
	pm, ok := model.ParsePaymentMethod(paymentMethod)
	if !ok {
		return model.Order{}, model.NewValidation("invalid payment method")
	}

	//この時点の明細を固定して渡す
	lines, totals := cart.Snapshot()
	fee := model.DeliveryFee(totals.TotalPrice)

	order, err := u.orders.Create(ctx, OrderRequest{
		Items:         lines,
		Total:         totals.TotalPrice.Add(fee),
		Address:       delivery.FullAddress(),
		CustomerName:  strings.TrimSpace(delivery.Name),
		CustomerPhone: strings.TrimSpace(delivery.Phone),
		Instructions:  strings.TrimSpace(delivery.Instructions),
		PaymentMethod: pm,
		DeliveryTime:  DefaultDeliveryTime,
	})
	if err != nil {
		return model.Order{}, err
	}

	cart.Clear()
	return order, nil
}
