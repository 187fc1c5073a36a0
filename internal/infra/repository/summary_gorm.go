package repository

import (
	"context"
	"time"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"

	"gorm.io/gorm"
)

type SummaryGormRepository struct {
	db *gorm.DB
}

func NewSummaryGormRepository(db *gorm.DB) *SummaryGormRepository {
	return &SummaryGormRepository{db: db}
}

// 窓内のロールアップを消してordersから作り直す（delete-then-reinsert）
func (r *SummaryGormRepository) RefreshWindow(ctx context.Context, since time.Time) error {
	day := since.Truncate(24 * time.Hour)

	if err := r.db.WithContext(ctx).
		Where("sale_date >= ?", day).
		Delete(&model.DailySalesSummary{}).Error; err != nil {
		return err
	}

	var rows []repo.DailySalesRow
	err := r.db.WithContext(ctx).Model(&model.Order{}).
		Select("DATE(created_at) AS sale_date, SUM(total_amount) AS total_revenue, COUNT(*) AS total_orders").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("sale_date ASC").
		Scan(&rows).Error
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	summaries := make([]model.DailySalesSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, model.DailySalesSummary{
			SaleDate:     row.SaleDate,
			TotalRevenue: row.TotalRevenue,
			TotalOrders:  row.TotalOrders,
		})
	}

	return r.db.WithContext(ctx).Create(&summaries).Error
}
