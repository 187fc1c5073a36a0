package repository

import "context"

type InventoryRepository interface {
	// 在庫減算。DB側で stock_quantity = stock_quantity - qty を1文で実行する
	// （read-modify-writeにしない）。対象商品が無ければErrNotFound。
	// マイナス在庫は許容する（方針はDESIGN.md参照）。
	DecrementStock(ctx context.Context, productID int64, qty int64) error
}
