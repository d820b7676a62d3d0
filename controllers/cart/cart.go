package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/middleware"
	"storefront/models"
)

// AddToCart adds one unit of a product to the authenticated user's cart.
// A row already holding that (user, product) pair is incremented instead
// of duplicated.
// POST /add_to_cart/:id
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		productID := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			c.String(http.StatusInternalServerError, "Failed to add to cart")
			return
		}

		var item models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&item).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = models.CartItem{
				UserID:    user.ID,
				ProductID: product.ID,
				Quantity:  1,
				AddedAt:   time.Now(),
			}
			if err := db.Create(&item).Error; err != nil {
				c.String(http.StatusInternalServerError, "Failed to add to cart")
				return
			}
		case err != nil:
			c.String(http.StatusInternalServerError, "Failed to add to cart")
			return
		default:
			item.Quantity++
			if err := db.Save(&item).Error; err != nil {
				c.String(http.StatusInternalServerError, "Failed to update cart")
				return
			}
		}

		middleware.Flash(c, "success", "Added to cart!")
		c.Redirect(http.StatusFound, "/")
	}
}

// ViewCart lists the user's cart rows joined with product data.
// GET /cart
func ViewCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		items, err := UserCart(db, user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch cart")
			return
		}

		c.HTML(http.StatusOK, "cart.html", gin.H{
			"Title":   "Cart",
			"User":    user,
			"Flashes": middleware.TakeFlashes(c),
			"Items":   items,
			"Total":   models.CartTotal(items),
		})
	}
}

// RemoveFromCart deletes a cart row by id, but only when it belongs to
// the requesting user.
// GET /cart/remove/:id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)
		itemID := c.Param("id")

		var item models.CartItem
		if err := db.First(&item, "id = ?", itemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			c.String(http.StatusInternalServerError, "Failed to fetch cart item")
			return
		}

		if item.UserID != user.ID {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to remove item")
			return
		}

		middleware.Flash(c, "info", "Removed from cart")
		c.Redirect(http.StatusFound, "/cart")
	}
}

// UserCart loads a user's cart rows with their products.
func UserCart(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	return items, err
}
