package repository

import (
	"context"
	"time"
)

type SummaryRepository interface {
	// since以降のロールアップを削除してordersから入れ直す。
	// トランザクション内（TxRepos経由）で呼ぶこと。
	RefreshWindow(ctx context.Context, since time.Time) error
}
