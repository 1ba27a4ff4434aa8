package handler

import (
	"time"

	"quickmart/internal/domain/model"
	"quickmart/internal/usecase"

	"github.com/shopspring/decimal"
)

// 金額はJSONで常に小数2桁の文字列（"3.50"）
type Money decimal.Decimal

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + decimal.Decimal(m).StringFixed(2) + `"`), nil
}

type ProductResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       Money  `json:"price"`
	Unit        string `json:"unit"`
	Image       string `json:"image"`
	Description string `json:"description"`
	InStock     bool   `json:"in_stock"`
}

type CartLineResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Unit      string `json:"unit"`
	Image     string `json:"image"`
	Quantity  int64  `json:"quantity"`
}

type CartResponse struct {
	Items       []CartLineResponse `json:"items"`
	TotalItems  int64              `json:"total_items"`
	Subtotal    Money              `json:"subtotal"`
	DeliveryFee Money              `json:"delivery_fee"`
	Total       Money              `json:"total"`
}

// 追跡画面向けに表示名と段階を付ける
type OrderResponse struct {
	ID                int64               `json:"id"`
	Items             []CartLineResponse  `json:"items"`
	Total             Money               `json:"total"`
	Status            model.OrderStatus   `json:"status"`
	StatusLabel       string              `json:"status_label"`
	StatusStep        int                 `json:"status_step"`
	DeliveryTime      string              `json:"delivery_time"`
	Address           string              `json:"address"`
	CustomerName      string              `json:"customer_name"`
	CustomerPhone     string              `json:"customer_phone"`
	Instructions      string              `json:"instructions"`
	PaymentMethod     model.PaymentMethod `json:"payment_method"`
	CreatedAt         time.Time           `json:"created_at"`
	EstimatedDelivery time.Time           `json:"estimated_delivery"`
	ActualDelivery    *time.Time          `json:"actual_delivery"`
}

func toProduct(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Price:       Money(p.Price),
		Unit:        p.Unit,
		Image:       p.Image,
		Description: p.Description,
		InStock:     p.InStock,
	}
}

func toProducts(ps []model.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProduct(p))
	}
	return out
}

func toLines(lines []model.CartLine) []CartLineResponse {
	out := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     Money(l.Price),
			Unit:      l.Unit,
			Image:     l.Image,
			Quantity:  l.Quantity,
		})
	}
	return out
}

func toCart(c usecase.CartOutput) CartResponse {
	return CartResponse{
		Items:       toLines(c.Items),
		TotalItems:  c.TotalItems,
		Subtotal:    Money(c.Subtotal),
		DeliveryFee: Money(c.DeliveryFee),
		Total:       Money(c.Total),
	}
}

func toOrder(o model.Order) OrderResponse {
	return OrderResponse{
		ID:                o.ID,
		Items:             toLines(o.Items),
		Total:             Money(o.Total),
		Status:            o.Status,
		StatusLabel:       o.Status.Label(),
		StatusStep:        o.Status.Step(),
		DeliveryTime:      o.DeliveryTime,
		Address:           o.Address,
		CustomerName:      o.CustomerName,
		CustomerPhone:     o.CustomerPhone,
		Instructions:      o.Instructions,
		PaymentMethod:     o.PaymentMethod,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
		ActualDelivery:    o.ActualDelivery,
	}
}

func toOrders(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrder(o))
	}
	return out
}
