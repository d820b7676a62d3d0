package apiControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/models"
)

// ProductResponse is the public JSON projection of a product.
type ProductResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"image_url"`
}

// GetProducts returns the full catalog as a flat JSON list. No auth, no
// pagination.
// GET /api/products
func GetProducts(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		output := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			output = append(output, ProductResponse{
				ID:          p.ID,
				Name:        p.Name,
				Description: p.Description,
				Price:       p.Price,
				Category:    p.Category,
				ImageURL:    p.ImageURL(cfg.BaseURL),
			})
		}

		c.JSON(http.StatusOK, gin.H{"products": output})
	}
}
