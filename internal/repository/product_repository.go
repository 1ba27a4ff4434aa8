package repository

import "quickmart/internal/domain/model"

// 商品の保存・取得だけを約束。検索はCatalog側。
type ProductRepository = Repository[model.Product]
