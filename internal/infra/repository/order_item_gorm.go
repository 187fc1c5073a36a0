package repository

import (
	"context"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

// 商品名をJOINした明細
func (r *OrderItemGormRepository) ListDetailByOrderID(ctx context.Context, orderID int64) ([]repo.OrderItemDetail, error) {
	var details []repo.OrderItemDetail
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("order_items.order_id, order_items.product_id, products.name AS product_name, order_items.quantity, order_items.unit_price, order_items.line_total").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("order_items.order_id = ?", orderID).
		Order("order_items.id asc").
		Scan(&details).Error
	if err != nil {
		return []repo.OrderItemDetail{}, err
	}
	return details, nil
}

func (r *OrderItemGormRepository) SumLineTotals(ctx context.Context, orderID int64) (float64, error) {
	var sum float64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("COALESCE(SUM(line_total), 0)").
		Where("order_id = ?", orderID).
		Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
