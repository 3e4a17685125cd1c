package models

import (
	"time"
)

// CartItem is a line item owned by exactly one cart. Price is a positive
// amount in minor currency units; validation of the field ranges happens at
// the API boundary before construction.
type CartItem struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CartID    int64     `gorm:"column:cart_id;not null;index" json:"cartId"`
	Code      string    `gorm:"column:code;size:255;not null" json:"code"`
	Name      string    `gorm:"column:name;size:255;not null" json:"name"`
	Price     int       `gorm:"column:price;not null" json:"price"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (CartItem) TableName() string {
	return "cart_items"
}
