package models

import (
	"fmt"
	"strings"
	"time"
)

// DefaultProductImage is used when an admin creates a product without
// uploading an image.
const DefaultProductImage = "default_product.jpg"

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `json:"category"` // free text, may be empty
	Image       string  `gorm:"not null;default:default_product.jpg" json:"image"`
	CreatedAt   time.Time
}

// ImageURL resolves the stored image reference to a public URL. Absolute
// URLs are returned as-is; filenames are served from the static images path.
func (p *Product) ImageURL(baseURL string) string {
	if strings.HasPrefix(p.Image, "http") {
		return p.Image
	}
	return fmt.Sprintf("%s/static/images/%s", strings.TrimRight(baseURL, "/"), p.Image)
}
