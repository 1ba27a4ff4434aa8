package memory

import (
	"context"
	"time"
)

// 操作ごとの擬似レイテンシ
type Delays struct {
	List   time.Duration
	Get    time.Duration
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

var (
	CategoryDelays = Delays{
		List:   200 * time.Millisecond,
		Get:    150 * time.Millisecond,
		Create: 300 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 200 * time.Millisecond,
	}
	ProductDelays = Delays{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 300 * time.Millisecond,
		Update: 300 * time.Millisecond,
		Delete: 200 * time.Millisecond,
	}
	OrderDelays = Delays{
		List:   300 * time.Millisecond,
		Get:    200 * time.Millisecond,
		Create: 400 * time.Millisecond,
		Update: 200 * time.Millisecond,
		Delete: 200 * time.Millisecond,
	}
)

// factorが0以下なら待たない
func (d Delays) Scale(factor float64) Delays {
	if factor <= 0 {
		return Delays{}
	}
	scale := func(v time.Duration) time.Duration {
		return time.Duration(float64(v) * factor)
	}
	return Delays{
		List:   scale(d.List),
		Get:    scale(d.Get),
		Create: scale(d.Create),
		Update: scale(d.Update),
		Delete: scale(d.Delete),
	}
}

// dだけ待つ。途中でctxが終わればctx.Err()。
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
