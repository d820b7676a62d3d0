package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/models"
	"storefront/routes"
)

func main() {
	log.Println("starting storefront...")

	cfg := config.Load()

	db := initDatabase(cfg)

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// First-run data: admin account + sample catalog
	if err := models.Seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	// Gin setup
	r := gin.Default()
	r.MaxMultipartMemory = 8 << 20 // 8 MB

	r.LoadHTMLGlob(cfg.TemplateGlob)

	// Serve uploaded product images
	r.Static("/static/images", cfg.UploadDir)

	routes.SetupRoutes(r, db, cfg)

	log.Printf("server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func initDatabase(cfg *config.Config) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)
	// Associations are joined explicitly; no FK constraints are created, so
	// an admin product delete never trips over existing cart rows.
	gormCfg := &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true}
	if cfg.DatabaseURL != "" {
		db, err = gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	}
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	return db
}
