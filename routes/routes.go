package routes

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/middleware"
)

// SetupRoutes is the single entry-point that wires up the session store,
// the per-request principal loader, and the Store, Admin, and API route
// groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("storefront_session", store))
	r.Use(middleware.LoadUser(db))

	// Public storefront + authenticated cart/checkout pages
	SetupStoreRoutes(r, db)

	// Admin dashboard (admin-only)
	SetupAdminRoutes(r, db, cfg)

	// Public JSON API
	SetupAPIRoutes(r, db, cfg)
}
