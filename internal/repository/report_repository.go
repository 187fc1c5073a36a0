package repository

import (
	"context"
	"time"
)

type ProductRevenueRow struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Revenue   float64 `json:"revenue"`
}

type DailySalesRow struct {
	SaleDate     time.Time `json:"sale_date"`
	TotalRevenue float64   `json:"total_revenue"`
	TotalOrders  int64     `json:"total_orders"`
}

type WindowSummaryRow struct {
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

type OrderTotalMismatch struct {
	OrderID      int64   `json:"order_id"`
	StoredTotal  float64 `json:"stored_total"`
	CorrectTotal float64 `json:"correct_total"`
}

// 読み取り専用の集計。sinceは呼び出し時点のnowから引いた窓の下限。
type ReportRepository interface {
	// 売上降順。limit 0 は無制限。
	TopProductsByRevenue(ctx context.Context, since time.Time, limit int) ([]ProductRevenueRow, error)

	// 日付昇順
	DailySales(ctx context.Context, since time.Time) ([]DailySalesRow, error)

	WindowSummary(ctx context.Context, since time.Time) (WindowSummaryRow, error)

	// |total_amount - Σ line_total| > tolerance の注文
	OrderTotalMismatches(ctx context.Context, tolerance float64) ([]OrderTotalMismatch, error)
}
