package model

// 注文の明細
// line_total = quantity * unit_price を保存時に確定する。
type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	LineTotal float64 `gorm:"type:numeric(10,2);not null" json:"line_total"`

	Order   *Order   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Product *Product `gorm:"constraint:OnDelete:RESTRICT" json:"-"`
}
