package usecase

import (
	"context"
	"time"

	"shoplite/internal/domain/model"
	repo "shoplite/internal/repository"
)

const (
	// 期間のデフォルト（日数）
	DefaultTopProductsDays = 30
	DefaultDailySalesDays  = 90
	DefaultSummaryDays     = 90

	// top-productsの件数上限デフォルト。0で無制限。
	DefaultTopProductsLimit = 10

	// 日次売上の移動平均の窓
	movingAvgWindow = 7
)

type ReportUsecase struct {
	reportRepo  repo.ReportRepository
	productRepo repo.ProductRepository
}

func NewReportUsecase(reportRepo repo.ReportRepository, productRepo repo.ProductRepository) *ReportUsecase {
	return &ReportUsecase{reportRepo: reportRepo, productRepo: productRepo}
}

type TopProductsInput struct {
	Days  int
	Limit int
}

func (u *ReportUsecase) TopProducts(ctx context.Context, in TopProductsInput) ([]repo.ProductRevenueRow, error) {
	if in.Days <= 0 {
		return []repo.ProductRevenueRow{}, NewValidationError("invalid days")
	}
	if in.Limit < 0 {
		return []repo.ProductRevenueRow{}, NewValidationError("invalid limit")
	}

	since := time.Now().AddDate(0, 0, -in.Days)
	rows, err := u.reportRepo.TopProductsByRevenue(ctx, since, in.Limit)
	if err != nil {
		return []repo.ProductRevenueRow{}, NewPersistenceError(err)
	}
	return rows, nil
}

type DailySalesOutput struct {
	Dates     []string  `json:"dates"`
	Revenues  []float64 `json:"revenues"`
	MovingAvg []float64 `json:"moving_avg"`
}

// 日別売上と7日移動平均。先頭側は縮小窓（min(7, i+1)要素）で埋める。
func (u *ReportUsecase) DailySales(ctx context.Context, days int) (DailySalesOutput, error) {
	if days <= 0 {
		return DailySalesOutput{}, NewValidationError("invalid days")
	}

	since := time.Now().AddDate(0, 0, -days)
	rows, err := u.reportRepo.DailySales(ctx, since)
	if err != nil {
		return DailySalesOutput{}, NewPersistenceError(err)
	}

	dates := make([]string, 0, len(rows))
	revenues := make([]float64, 0, len(rows))
	for _, row := range rows {
		dates = append(dates, row.SaleDate.Format("2006-01-02"))
		revenues = append(revenues, row.TotalRevenue)
	}

	return DailySalesOutput{
		Dates:     dates,
		Revenues:  revenues,
		MovingAvg: trailingMovingAverage(revenues, movingAvgWindow),
	}, nil
}

func (u *ReportUsecase) LowStock(ctx context.Context) ([]model.Product, error) {
	products, err := u.productRepo.ListLowStock(ctx)
	if err != nil {
		return []model.Product{}, NewPersistenceError(err)
	}
	return products, nil
}

type WindowSummaryOutput struct {
	Days         int     `json:"days"`
	OrderCount   int64   `json:"order_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

func (u *ReportUsecase) WindowSummary(ctx context.Context, days int) (WindowSummaryOutput, error) {
	if days <= 0 {
		return WindowSummaryOutput{}, NewValidationError("invalid days")
	}

	since := time.Now().AddDate(0, 0, -days)
	row, err := u.reportRepo.WindowSummary(ctx, since)
	if err != nil {
		return WindowSummaryOutput{}, NewPersistenceError(err)
	}

	return WindowSummaryOutput{
		Days:         days,
		OrderCount:   row.OrderCount,
		TotalRevenue: row.TotalRevenue,
	}, nil
}

// 末尾window個（足りない間は先頭からi+1個）の平均
func trailingMovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		var sum float64
		for _, v := range values[start : i+1] {
			sum += v
		}
		out[i] = sum / float64(i+1-start)
	}
	return out
}
