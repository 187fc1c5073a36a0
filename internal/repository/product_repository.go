package repository

import (
	"context"
	"errors"

	"shoplite/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Search   string // name/descriptionの部分一致（大文字小文字を区別しない）
	Category string // 完全一致
}

// 商品の取得だけを約束。在庫の変更はInventoryRepository側。
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// stock_quantity <= reorder_level の商品（在庫昇順）
	ListLowStock(ctx context.Context) ([]model.Product, error)
}
