package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"quickmart/internal/domain/model"
	"quickmart/internal/handler"
	"quickmart/internal/infra/memory"
	"quickmart/internal/middleware"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// 遅延なしのメモリ実装で組み立てたecho
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cat, err := memory.DefaultCatalog()
	require.NoError(t, err)

	catalog := usecase.NewCatalogUsecase(
		memory.NewCategoryStore(memory.Delays{}, cat.Categories),
		memory.NewProductStore(memory.Delays{}, cat.Products),
	)
	carts := usecase.NewCartUsecase(memory.NewCartStore(), catalog)
	orders := usecase.NewOrderUsecase(
		memory.NewOrderStore(memory.Delays{}, nil),
		fixedClock{t: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
	)
	checkout := usecase.NewCheckoutUsecase(orders)

	e := echo.New()
	handler.NewCatalogHandler(catalog).RegisterRoutes(e)
	handler.NewAdminProductHandler(catalog).RegisterRoutes(e)
	handler.NewCartHandler(carts).RegisterRoutes(e)
	handler.NewOrderHandler(orders, checkout, carts).RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if session != "" {
		req.Header.Set(middleware.SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body=%s", rec.Body.String())
	return v
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type cartResp struct {
	Items       []model.CartLine `json:"items"`
	TotalItems  int64            `json:"total_items"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	DeliveryFee decimal.Decimal  `json:"delivery_fee"`
	Total       decimal.Decimal  `json:"total"`
}

type orderResp struct {
	model.Order
	StatusLabel string `json:"status_label"`
	StatusStep  int    `json:"status_step"`
}

type errResp struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}
