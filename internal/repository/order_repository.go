package repository

import (
	"context"

	"shoplite/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	UpdateTotal(ctx context.Context, orderID int64, total float64) error

	// 全件（再計算ツールで使う）
	List(ctx context.Context) ([]model.Order, error)
}
