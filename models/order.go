package models

import "time"

// Order is an immutable snapshot of a completed checkout. Line items are
// not retained; only the total survives the cart being cleared.
type Order struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	User        User      `gorm:"foreignKey:UserID" json:"-"`
	TotalAmount float64   `json:"total_amount"`
	OrderRef    string    `gorm:"unique" json:"order_ref"`
	CreatedAt   time.Time `json:"created_at"`
}
