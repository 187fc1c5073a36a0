package model

import "time"

// total_amountは作成時0で入れて、明細確定後に同一トランザクション内で更新する
type Order struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerName    string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string    `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerAddress string    `gorm:"type:varchar(255)" json:"customer_address"`
	CustomerCity    string    `gorm:"type:varchar(100)" json:"customer_city"`
	CustomerState   string    `gorm:"type:varchar(100)" json:"customer_state"`
	CustomerZip     string    `gorm:"type:varchar(20)" json:"customer_zip"`
	TotalAmount     float64   `gorm:"type:numeric(10,2);not null" json:"total_amount"`
	CreatedAt       time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
