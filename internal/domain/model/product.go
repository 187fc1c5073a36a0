package model

import "time"

type Product struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Category      string    `gorm:"type:varchar(100);index" json:"category"`
	Price         float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	StockQuantity int64     `gorm:"not null" json:"stock_quantity"`
	ReorderLevel  int64     `gorm:"not null" json:"reorder_level"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
