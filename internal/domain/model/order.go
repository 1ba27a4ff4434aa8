package model

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusPreparing  OrderStatus = "preparing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusDelivered  OrderStatus = "delivered"
)

// 進行順
var orderStatusSteps = []OrderStatus{
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusDelivering,
	OrderStatusDelivered,
}

var orderStatusLabels = map[OrderStatus]string{
	OrderStatusConfirmed:  "Order Confirmed",
	OrderStatusPreparing:  "Preparing",
	OrderStatusDelivering: "On the Way",
	OrderStatusDelivered:  "Delivered",
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	if st.Step() < 0 {
		return "", false
	}
	return st, true
}

// 0始まりの進行位置。未知のステータスは-1。
func (s OrderStatus) Step() int {
	for i, st := range orderStatusSteps {
		if st == s {
			return i
		}
	}
	return -1
}

// 次のステータス。deliveredと未知の値はfalse。
func (s OrderStatus) Next() (OrderStatus, bool) {
	i := s.Step()
	if i < 0 || i+1 >= len(orderStatusSteps) {
		return "", false
	}
	return orderStatusSteps[i+1], true
}

func (s OrderStatus) Label() string {
	if l, ok := orderStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodWallet PaymentMethod = "wallet"
)

// 空ならcard
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch pm := PaymentMethod(strings.ToLower(strings.TrimSpace(s))); pm {
	case "":
		return PaymentMethodCard, true
	case PaymentMethodCard, PaymentMethodCash, PaymentMethodWallet:
		return pm, true
	default:
		return "", false
	}
}

type Order struct {
	ID                int64           `json:"id"`
	Items             []CartLine      `json:"items"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	DeliveryTime      string          `json:"delivery_time"`
	Address           string          `json:"address"`
	CustomerName      string          `json:"customer_name"`
	CustomerPhone     string          `json:"customer_phone"`
	Instructions      string          `json:"instructions"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	CreatedAt         time.Time       `json:"created_at"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ActualDelivery    *time.Time      `json:"actual_delivery"`
}

func (o *Order) EntityID() int64      { return o.ID }
func (o *Order) SetEntityID(id int64) { o.ID = id }

// 明細と配達時刻は共有しない
func (o *Order) Clone() Order {
	cp := *o
	cp.Items = copyLines(o.Items)
	if o.ActualDelivery != nil {
		t := *o.ActualDelivery
		cp.ActualDelivery = &t
	}
	return cp
}

const DefaultETA = 15 * time.Minute

// "12 mins" のような表示用文字列を時間に変換する。
// 読めない場合はDefaultETA。
func ParseDeliveryTime(display string) time.Duration {
	s := strings.TrimSpace(strings.ToLower(display))
	if s == "" {
		return DefaultETA
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}

	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end < 0 {
		end = len(s)
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil || n <= 0 {
		return DefaultETA
	}

	unit := strings.TrimSpace(s[end:])
	switch {
	case unit == "", strings.HasPrefix(unit, "m"):
		return time.Duration(n) * time.Minute
	case strings.HasPrefix(unit, "h"):
		return time.Duration(n) * time.Hour
	default:
		return DefaultETA
	}
}
