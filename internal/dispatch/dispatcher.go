// Package dispatch simulates the delivery side of the shop: it walks every
// open order one status forward per tick.
package dispatch

import (
	"context"
	"time"

	"quickmart/internal/domain/model"
	"quickmart/internal/logger"
)

// 注文一覧とステータス更新だけを約束（OrderUsecaseが満たす）
type OrderAdvancer interface {
	List(ctx context.Context) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error)
}

type Dispatcher struct {
	orders   OrderAdvancer
	interval time.Duration
	log      *logger.Logger
}

// DI
func New(orders OrderAdvancer, interval time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		orders:   orders,
		interval: interval,
		log:      log.With("component", "dispatcher"),
	}
}

// ctxが終わるまでintervalごとにTickする
func (d *Dispatcher) Run(ctx context.Context) error {
	t := time.NewTicker(d.interval)
	defer t.Stop()

	d.log.Info("dispatcher started", "interval", d.interval.String())
	for {
		select {
		case <-ctx.Done():
			d.log.Info("dispatcher stopped")
			return nil
		case <-t.C:
			if _, err := d.Tick(ctx); err != nil && ctx.Err() == nil {
				d.log.Warn("dispatch tick failed", "error", err)
			}
		}
	}
}

// Tick moves every order that is not yet delivered one step forward and
// returns how many were advanced. Orders with an unknown status are skipped.
func (d *Dispatcher) Tick(ctx context.Context) (int, error) {
	orders, err := d.orders.List(ctx)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, o := range orders {
		next, ok := o.Status.Next()
		if !ok {
			continue
		}
		//一覧取得後に消えた注文は飛ばす
		updated, err := d.orders.UpdateStatus(ctx, o.ID, next)
		if err != nil {
			if e, ok := model.AsError(err); ok && e.Kind == model.KindNotFound {
				continue
			}
			return advanced, err
		}
		advanced++
		d.log.Debug("order advanced",
			"order_id", updated.ID,
			"from", string(o.Status),
			"to", string(updated.Status),
		)
	}
	return advanced, nil
}
