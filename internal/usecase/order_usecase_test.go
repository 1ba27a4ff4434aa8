package usecase_test

import (
	"context"
	"testing"
	"time"

	"quickmart/internal/domain/model"
	"quickmart/internal/infra/memory"
	"quickmart/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRequest() usecase.OrderRequest {
	return usecase.OrderRequest{
		Items:         []model.CartLine{{ProductID: 1, Name: "Organic Bananas", Price: dec("3.50"), Quantity: 2}},
		Total:         dec("9.99"),
		Address:       "1 Main St",
		CustomerName:  "Sam",
		CustomerPhone: "555-0100",
		PaymentMethod: model.PaymentMethodCard,
		DeliveryTime:  "12 mins",
	}
}

func TestOrderUsecase_Create_Confirmed(t *testing.T) {
	uc, _ := newOrderUsecase()

	o, err := uc.Create(context.Background(), orderRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), o.ID)
	assert.Equal(t, model.OrderStatusConfirmed, o.Status)
	assert.Equal(t, testNow, o.CreatedAt)
	assert.Equal(t, testNow.Add(12*time.Minute), o.EstimatedDelivery)
	assert.Nil(t, o.ActualDelivery)
}

func TestOrderUsecase_Create_DefaultETA(t *testing.T) {
	uc, _ := newOrderUsecase()
	req := orderRequest()
	req.DeliveryTime = ""

	o, err := uc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(15*time.Minute), o.EstimatedDelivery)
}

func TestOrderUsecase_Create_Validation(t *testing.T) {
	uc, _ := newOrderUsecase()
	ctx := context.Background()

	empty := orderRequest()
	empty.Items = nil
	_, err := uc.Create(ctx, empty)
	assert.ErrorIs(t, err, model.ErrValidation)

	zero := orderRequest()
	zero.Total = decimal.Zero
	_, err = uc.Create(ctx, zero)
	assert.ErrorIs(t, err, model.ErrValidation)

	negative := orderRequest()
	negative.Total = dec("-1")
	_, err = uc.Create(ctx, negative)
	assert.ErrorIs(t, err, model.ErrValidation)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderUsecase_Create_CopiesItems(t *testing.T) {
	uc, _ := newOrderUsecase()
	req := orderRequest()

	o, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	req.Items[0].Quantity = 40
	got, err := uc.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Items[0].Quantity)
}

func TestOrderUsecase_GetByID_NotFound(t *testing.T) {
	seed := make([]model.Order, 0, 5)
	for i := int64(1); i <= 5; i++ {
		seed = append(seed, model.Order{ID: i, Status: model.OrderStatusConfirmed})
	}
	uc := usecase.NewOrderUsecase(memory.NewOrderStore(memory.Delays{}, seed), &fixedClock{t: testNow})

	_, err := uc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOrderUsecase_UpdateStatus_DeliveredStampsActualDelivery(t *testing.T) {
	uc, clock := newOrderUsecase()
	ctx := context.Background()

	o, err := uc.Create(ctx, orderRequest())
	require.NoError(t, err)

	for _, st := range []model.OrderStatus{model.OrderStatusPreparing, model.OrderStatusDelivering} {
		updated, err := uc.UpdateStatus(ctx, o.ID, st)
		require.NoError(t, err)
		assert.Equal(t, st, updated.Status)
		assert.Nil(t, updated.ActualDelivery)
	}

	clock.t = testNow.Add(11 * time.Minute)
	delivered, err := uc.UpdateStatus(ctx, o.ID, model.OrderStatusDelivered)
	require.NoError(t, err)
	require.NotNil(t, delivered.ActualDelivery)
	assert.Equal(t, clock.t, *delivered.ActualDelivery)
}

// 遷移のチェックはしない
func TestOrderUsecase_UpdateStatus_IsPermissive(t *testing.T) {
	uc, _ := newOrderUsecase()
	ctx := context.Background()

	o, err := uc.Create(ctx, orderRequest())
	require.NoError(t, err)

	skipped, err := uc.UpdateStatus(ctx, o.ID, model.OrderStatusDelivering)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivering, skipped.Status)

	back, err := uc.UpdateStatus(ctx, o.ID, model.OrderStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusConfirmed, back.Status)
	assert.Nil(t, back.ActualDelivery)
}

func TestOrderUsecase_UpdateStatus_NotFound(t *testing.T) {
	uc, _ := newOrderUsecase()

	_, err := uc.UpdateStatus(context.Background(), 42, model.OrderStatusDelivered)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestOrderUsecase_List_CreationOrder(t *testing.T) {
	uc, _ := newOrderUsecase()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(ctx, orderRequest())
		require.NoError(t, err)
	}

	all, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{all[0].ID, all[1].ID, all[2].ID})
}
