package model

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// カートの明細
// 追加時点の価格を必ず保存。
type CartLine struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Unit      string          `json:"unit"`
	Image     string          `json:"image"`
	Quantity  int64           `json:"quantity"`
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(l.Quantity))
}

// 1明細あたりの数量の上限
const MaxLineQuantity int64 = 99

type CartTotals struct {
	TotalItems int64           `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Cart is the per-session aggregate of product lines.
//
// Lines are keyed by ProductID and kept in insertion order. A line always
// holds a quantity in [1, MaxLineQuantity]: setting zero or less removes it,
// and a change that would exceed the cap is rejected without touching the
// line. Totals are recomputed from the lines on every call.
type Cart struct {
	mu    sync.Mutex
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// 同一商品は数量加算。価格は追加時点のものを使う。
// 上限を超える場合はValidationで、カートは変えない。
func (c *Cart) AddItem(p Product, qty int64) error {
	if qty <= 0 {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(p.ID); i >= 0 {
		//加算前に比べるので桁あふれしない
		if qty > MaxLineQuantity-c.lines[i].Quantity {
			return errQuantityLimit()
		}
		c.lines[i].Quantity += qty
		return nil
	}
	if qty > MaxLineQuantity {
		return errQuantityLimit()
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Unit:      p.Unit,
		Image:     p.Image,
		Quantity:  qty,
	})
	return nil
}

// qtyが0以下なら明細ごと削除。上限超えはValidation。
func (c *Cart) SetQuantity(productID int64, qty int64) error {
	if qty > MaxLineQuantity {
		return errQuantityLimit()
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(productID)
	if i < 0 {
		return nil
	}
	if qty <= 0 {
		c.removeAt(i)
		return nil
	}
	c.lines[i].Quantity = qty
	return nil
}

func (c *Cart) RemoveItem(productID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexOf(productID); i >= 0 {
		c.removeAt(i)
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

func (c *Cart) Totals() CartTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalsOf(c.lines)
}

// 明細のコピーを返す
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLines(c.lines)
}

// 明細と合計を同じ時点で取る（チェックアウト用）
func (c *Cart) Snapshot() ([]CartLine, CartTotals) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copyLines(c.lines), totalsOf(c.lines)
}

// カートに無ければ0
func (c *Cart) Quantity(productID int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(productID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}

func errQuantityLimit() error {
	return NewValidation(fmt.Sprintf("quantity must not exceed %d", MaxLineQuantity))
}

func (c *Cart) indexOf(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.lines = append(c.lines[:i:i], c.lines[i+1:]...)
}

func totalsOf(lines []CartLine) CartTotals {
	t := CartTotals{TotalPrice: decimal.Zero}
	for _, l := range lines {
		t.TotalItems += l.Quantity
		t.TotalPrice = t.TotalPrice.Add(l.Subtotal())
	}
	return t
}

func copyLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
