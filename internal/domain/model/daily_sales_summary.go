package model

import "time"

// 日次売上のロールアップ
// レポート高速化用。正は常にorders側。
type DailySalesSummary struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	SaleDate     time.Time `gorm:"type:date;not null;uniqueIndex" json:"sale_date"`
	TotalRevenue float64   `gorm:"type:numeric(12,2);not null" json:"total_revenue"`
	TotalOrders  int64     `gorm:"not null" json:"total_orders"`
}
