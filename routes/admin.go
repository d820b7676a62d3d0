package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/config"
	adminControllers "storefront/controllers/admin"
	"storefront/middleware"
)

// SetupAdminRoutes registers the product-management endpoints. Every route
// here demands an admin principal; anonymous and non-admin requests get 403.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin())
	{
		adminGroup.GET("", adminControllers.Dashboard(db))
		adminGroup.POST("", adminControllers.CreateProduct(db, cfg))
		adminGroup.GET("/products/export", adminControllers.ExportProductsToExcel(db))
	}

	r.POST("/product/delete/:id", middleware.RequireAdmin(), adminControllers.DeleteProduct(db))
}
