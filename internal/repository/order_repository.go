package repository

import "quickmart/internal/domain/model"

// 注文は作成後、ステータスと配達時刻だけが更新される
type OrderRepository = Repository[model.Order]
