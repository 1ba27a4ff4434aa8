package handler

import (
	"net/http"

	"quickmart/internal/domain/model"
	"quickmart/internal/middleware"
	"quickmart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orders   *usecase.OrderUsecase
	checkout *usecase.CheckoutUsecase
	carts    *usecase.CartUsecase
}

func NewOrderHandler(orders *usecase.OrderUsecase, checkout *usecase.CheckoutUsecase, carts *usecase.CartUsecase) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		checkout: checkout,
		carts:    carts,
	}
}

// セッションのカートから注文する
type OrderCreateRequest struct {
	model.DeliveryInfo
	PaymentMethod string `json:"payment_method"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/orders")
	g.Use(middleware.Session())

	g.POST("", h.create)
	g.GET("", h.list)
	g.GET("/:id", h.detail)
	g.PATCH("/:id/status", h.updateStatus)
}

func (h *OrderHandler) create(c echo.Context) error {
	sid, ok := getSessionIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "session required"})
	}

	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	cart, err := h.carts.Cart(sid)
	if err != nil {
		return writeError(c, err)
	}
	if cart.IsEmpty() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "cart is empty", Kind: string(model.KindValidation)})
	}

	out, err := h.checkout.PlaceOrder(c.Request().Context(), cart, req.DeliveryInfo, req.PaymentMethod)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toOrder(out))
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.orders.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrders(out))
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.orders.GetByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(out))
}

// 遷移順のチェックはしない。未知の値だけ弾く。
func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status", Kind: string(model.KindValidation)})
	}

	out, err := h.orders.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, toOrder(out))
}
