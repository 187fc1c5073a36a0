package usecase

import (
	"context"
	"math"
	"time"

	repo "shoplite/internal/repository"
)

// total_amountと明細合計の許容差（通貨単位）
const TotalTolerance = 0.01

type ToolsUsecase struct {
	tx         repo.TransactionManager
	reportRepo repo.ReportRepository
}

func NewToolsUsecase(tx repo.TransactionManager, reportRepo repo.ReportRepository) *ToolsUsecase {
	return &ToolsUsecase{tx: tx, reportRepo: reportRepo}
}

type RecomputeOutput struct {
	Processed int `json:"processed"`
	Corrected int `json:"corrected"`
}

// 全注文のtotal_amountを明細合計から引き直す。冪等：
// ズレが無ければCorrectedは0、値も変わらない。
func (u *ToolsUsecase) RecomputeOrderTotals(ctx context.Context) (RecomputeOutput, error) {
	var out RecomputeOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx)
		if err != nil {
			return err
		}

		for _, o := range orders {
			sum, err := r.OrderItems().SumLineTotals(ctx, o.ID)
			if err != nil {
				return err
			}

			if math.Abs(o.TotalAmount-sum) > TotalTolerance {
				out.Corrected++
				if err := r.Orders().UpdateTotal(ctx, o.ID, sum); err != nil {
					return err
				}
			}
			out.Processed++
		}
		return nil
	})

	if err != nil {
		return RecomputeOutput{}, NewPersistenceError(err)
	}
	return out, nil
}

type MismatchOutput struct {
	OrderID      int64   `json:"order_id"`
	StoredTotal  float64 `json:"stored_total"`
	CorrectTotal float64 `json:"correct_total"`
	Difference   float64 `json:"difference"`
}

// total_amountが明細合計とズレている注文の一覧（読み取りのみ）
func (u *ToolsUsecase) CheckOrderTotals(ctx context.Context) ([]MismatchOutput, error) {
	rows, err := u.reportRepo.OrderTotalMismatches(ctx, TotalTolerance)
	if err != nil {
		return []MismatchOutput{}, NewPersistenceError(err)
	}

	outs := make([]MismatchOutput, 0, len(rows))
	for _, row := range rows {
		outs = append(outs, MismatchOutput{
			OrderID:      row.OrderID,
			StoredTotal:  row.StoredTotal,
			CorrectTotal: row.CorrectTotal,
			Difference:   row.StoredTotal - row.CorrectTotal,
		})
	}
	return outs, nil
}

func (u *ToolsUsecase) RefreshDailySummary(ctx context.Context, days int) error {
	if days <= 0 {
		return NewValidationError("invalid days")
	}

	since := time.Now().AddDate(0, 0, -days)
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		return r.Summaries().RefreshWindow(ctx, since)
	})
	if err != nil {
		return NewPersistenceError(err)
	}
	return nil
}
