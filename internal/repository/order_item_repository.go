package repository

import (
	"context"

	"shoplite/internal/domain/model"
)

// 商品名付きの明細行（注文詳細用）
type OrderItemDetail struct {
	OrderID     int64   `json:"order_id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"name"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	LineTotal   float64 `json:"line_total"`
}

type OrderItemRepository interface {
	// 投入順を保ったまま一括作成
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	ListDetailByOrderID(ctx context.Context, orderID int64) ([]OrderItemDetail, error)

	// Σ line_total（明細が無い注文は0）
	SumLineTotals(ctx context.Context, orderID int64) (float64, error)
}
