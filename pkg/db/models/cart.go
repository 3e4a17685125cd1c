package models

import (
	"time"
)

// Cart is the aggregate root owning a collection of cart items. The code is
// an opaque token assigned once at creation; the total price is derived from
// the loaded items and never persisted.
type Cart struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Code      string     `gorm:"column:code;size:255;not null" json:"code"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Cart) TableName() string {
	return "carts"
}

// AddItem appends item to the cart and sets its back-reference. Adding an
// item whose identity is already present is a no-op, so the call is
// idempotent against duplicates.
func (c *Cart) AddItem(item *CartItem) {
	if item == nil {
		return
	}
	if item.ID != 0 && c.containsItem(item.ID) {
		return
	}
	item.CartID = c.ID
	c.Items = append(c.Items, *item)
}

// RemoveItem detaches the item with the same identity from the cart. Absent
// items are ignored.
func (c *Cart) RemoveItem(item *CartItem) {
	if item == nil || item.ID == 0 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == item.ID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			item.CartID = 0
			return
		}
	}
}

// TotalPrice sums price times quantity over the currently loaded items.
// An empty cart totals zero.
func (c *Cart) TotalPrice() int {
	total := 0
	for i := range c.Items {
		total += c.Items[i].Price * c.Items[i].Quantity
	}
	return total
}

func (c *Cart) containsItem(id int64) bool {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return true
		}
	}
	return false
}
