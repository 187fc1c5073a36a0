package repository

import (
	"context"
	"time"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"

	"gorm.io/gorm"
)

type ReportGormRepository struct {
	db *gorm.DB
}

func NewReportGormRepository(db *gorm.DB) *ReportGormRepository {
	return &ReportGormRepository{db: db}
}

// 期間内の商品別売上（売上降順）
func (r *ReportGormRepository) TopProductsByRevenue(ctx context.Context, since time.Time, limit int) ([]repo.ProductRevenueRow, error) {
	var rows []repo.ProductRevenueRow

	tx := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Select("products.id AS product_id, products.name AS name, SUM(order_items.line_total) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.created_at >= ?", since).
		Group("products.id, products.name").
		Order("revenue DESC")

	if limit > 0 {
		tx = tx.Limit(limit)
	}

	if err := tx.Scan(&rows).Error; err != nil {
		return []repo.ProductRevenueRow{}, err
	}
	return rows, nil
}

// 日別の売上と注文数（日付昇順）
func (r *ReportGormRepository) DailySales(ctx context.Context, since time.Time) ([]repo.DailySalesRow, error) {
	var rows []repo.DailySalesRow

	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("DATE(created_at) AS sale_date, SUM(total_amount) AS total_revenue, COUNT(*) AS total_orders").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("sale_date ASC").
		Scan(&rows).Error
	if err != nil {
		return []repo.DailySalesRow{}, err
	}
	return rows, nil
}

func (r *ReportGormRepository) WindowSummary(ctx context.Context, since time.Time) (repo.WindowSummaryRow, error) {
	var row repo.WindowSummaryRow

	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("COUNT(*) AS order_count, COALESCE(SUM(total_amount), 0) AS total_revenue").
		Where("created_at >= ?", since).
		Scan(&row).Error
	if err != nil {
		return repo.WindowSummaryRow{}, err
	}
	return row, nil
}

// 保存済みtotal_amountと明細合計がズレている注文
// 明細ゼロの注文は合計0として比較する。
func (r *ReportGormRepository) OrderTotalMismatches(ctx context.Context, tolerance float64) ([]repo.OrderTotalMismatch, error) {
	var rows []repo.OrderTotalMismatch

	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("orders.id AS order_id, orders.total_amount AS stored_total, COALESCE(SUM(order_items.line_total), 0) AS correct_total").
		Joins("LEFT JOIN order_items ON order_items.order_id = orders.id").
		Group("orders.id, orders.total_amount").
		Having("ABS(orders.total_amount - COALESCE(SUM(order_items.line_total), 0)) > ?", tolerance).
		Order("orders.id ASC").
		Scan(&rows).Error
	if err != nil {
		return []repo.OrderTotalMismatch{}, err
	}
	return rows, nil
}
