package models

import "time"

// CartItem is one pending line in a user's cart. A user has at most one
// row per product; repeat adds bump Quantity instead of inserting.
type CartItem struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_user_product" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_user_product" json:"product_id"`
	Quantity  int     `gorm:"not null;default:1" json:"quantity"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	AddedAt   time.Time
}

// CartTotal sums unit price times quantity over the given rows. Rows must
// have their Product association loaded.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}
