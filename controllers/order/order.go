package orderControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cartControllers "storefront/controllers/cart"
	"storefront/middleware"
	"storefront/models"
)

// Checkout shows the order summary for the user's current cart. An empty
// cart redirects home with a warning instead of rendering.
// GET /checkout
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		items, err := cartControllers.UserCart(db, user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if len(items) == 0 {
			middleware.Flash(c, "warning", "Cart is empty")
			c.Redirect(http.StatusFound, "/")
			return
		}

		c.HTML(http.StatusOK, "checkout.html", gin.H{
			"Title":   "Checkout",
			"User":    user,
			"Flashes": middleware.TakeFlashes(c),
			"Items":   items,
			"Total":   models.CartTotal(items),
		})
	}
}

// PlaceOrder snapshots the current cart total into an Order and clears the
// cart, both inside one transaction.
// POST /place_order
func PlaceOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := middleware.CurrentUser(c)

		items, err := cartControllers.UserCart(db, user.ID)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to fetch cart")
			return
		}
		if len(items) == 0 {
			middleware.Flash(c, "warning", "Cart is empty")
			c.Redirect(http.StatusFound, "/")
			return
		}

		order := models.Order{
			UserID:      user.ID,
			TotalAmount: models.CartTotal(items),
			OrderRef:    generateOrderRef(),
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
		})
		if err != nil {
			middleware.Flash(c, "danger", "Failed to place order. Please try again.")
			c.Redirect(http.StatusFound, "/checkout")
			return
		}

		middleware.Flash(c, "success", "Order placed successfully!")
		c.HTML(http.StatusOK, "success.html", gin.H{
			"Title":   "Order Placed",
			"User":    user,
			"Flashes": middleware.TakeFlashes(c),
			"Order":   order,
		})
	}
}

// generateOrderRef builds a unique order reference, e.g. 20250908130500-<uuid>.
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}
