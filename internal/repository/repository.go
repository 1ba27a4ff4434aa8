package repository

import (
	"context"

	"quickmart/internal/domain/model"
)

// どのリポジトリも未登録のidにはこれを返す
var ErrNotFound = model.ErrNotFound

// 1種類のエンティティの集合を持つ。
// 返す値は常にコピーで、呼び出し側が内部状態を書き換えることはできない。
type Repository[T any] interface {
	//登録順
	GetAll(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (T, error)

	//IDは既存の最大値+1を採番
	Create(ctx context.Context, entity T) (T, error)

	//patchはコピーに適用される。IDは上書きされない。
	Update(ctx context.Context, id int64, patch func(*T)) (T, error)
	Delete(ctx context.Context, id int64) (T, error)
}
