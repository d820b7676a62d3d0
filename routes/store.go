package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "storefront/controllers/cart"
	catalogControllers "storefront/controllers/catalog"
	orderControllers "storefront/controllers/order"
	userControllers "storefront/controllers/user"
	"storefront/middleware"
)

// SetupStoreRoutes registers the public catalog and auth pages plus the
// login-protected cart and checkout flows.
func SetupStoreRoutes(r *gin.Engine, db *gorm.DB) {
	// ──────────────── Catalog ────────────────
	r.GET("/", catalogControllers.Home(db))
	r.GET("/home", catalogControllers.Home(db))

	// ──────────────── Auth ────────────────
	r.GET("/register", userControllers.ShowRegister())
	r.POST("/register", userControllers.Register(db))
	r.GET("/login", userControllers.ShowLogin())
	r.POST("/login", userControllers.Login(db))
	r.GET("/logout", userControllers.Logout())

	// ──────────────── Cart & Checkout ────────────────
	authed := r.Group("/")
	authed.Use(middleware.RequireLogin())
	{
		authed.POST("/add_to_cart/:id", cartControllers.AddToCart(db))
		authed.GET("/cart", cartControllers.ViewCart(db))
		authed.GET("/cart/remove/:id", cartControllers.RemoveFromCart(db))
		authed.GET("/checkout", orderControllers.Checkout(db))
		authed.POST("/place_order", orderControllers.PlaceOrder(db))
	}
}
