package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/config"
	apiControllers "storefront/controllers/api"
)

// SetupAPIRoutes registers the public read-only JSON API. The API group is
// CORS-enabled so third-party frontends can consume the catalog.
func SetupAPIRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	api := r.Group("/api")
	api.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	{
		api.GET("/products", apiControllers.GetProducts(db, cfg))
	}
}
