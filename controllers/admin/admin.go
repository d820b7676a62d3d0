package adminControllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/middleware"
	"storefront/models"
)

// Dashboard renders the product management page with the create form and
// the full catalog.
// GET /admin
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		renderDashboard(c, db, http.StatusOK, nil)
	}
}

// CreateProduct validates the product form and stores the product, saving
// an uploaded image into the configured upload directory. Without an
// upload the product gets the placeholder image.
// POST /admin
func CreateProduct(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.TrimSpace(c.PostForm("name"))
		description := c.PostForm("description")
		priceStr := c.PostForm("price")
		category := strings.TrimSpace(c.PostForm("category"))

		var errs []string
		if name == "" {
			errs = append(errs, "Name is required.")
		}
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			errs = append(errs, "Price must be a non-negative number.")
		}
		if len(errs) > 0 {
			renderDashboard(c, db, http.StatusBadRequest, errs)
			return
		}

		image := models.DefaultProductImage
		if file, err := c.FormFile("image"); err == nil {
			filename := sanitizeFilename(file.Filename)
			if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
				renderDashboard(c, db, http.StatusInternalServerError,
					[]string{fmt.Sprintf("Failed to create upload folder: %v", err)})
				return
			}
			if err := c.SaveUploadedFile(file, filepath.Join(cfg.UploadDir, filename)); err != nil {
				renderDashboard(c, db, http.StatusInternalServerError,
					[]string{fmt.Sprintf("Failed to save image: %v", err)})
				return
			}
			image = filename
		}

		product := models.Product{
			Name:        name,
			Description: description,
			Price:       price,
			Category:    category,
			Image:       image,
		}
		if err := db.Create(&product).Error; err != nil {
			renderDashboard(c, db, http.StatusInternalServerError,
				[]string{"Failed to create product"})
			return
		}

		middleware.Flash(c, "success", "Product added successfully!")
		c.Redirect(http.StatusFound, "/admin")
	}
}

// DeleteProduct removes a product by id. Cart rows referencing it are not
// checked.
// POST /product/delete/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatus(http.StatusNotFound)
				return
			}
			c.String(http.StatusInternalServerError, "Failed to fetch product")
			return
		}

		if err := db.Delete(&product).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to delete product")
			return
		}

		middleware.Flash(c, "info", "Product deleted!")
		c.Redirect(http.StatusFound, "/admin")
	}
}

func renderDashboard(c *gin.Context, db *gorm.DB, status int, errs []string) {
	var products []models.Product
	if err := db.Order("id").Find(&products).Error; err != nil {
		c.String(http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	user, _ := middleware.CurrentUser(c)
	c.HTML(status, "admin_dashboard.html", gin.H{
		"Title":    "Admin",
		"User":     user,
		"Flashes":  middleware.TakeFlashes(c),
		"Errors":   errs,
		"Products": products,
	})
}

// sanitizeFilename strips any path components and replaces spaces, the
// same scheme used for every upload in this app.
func sanitizeFilename(name string) string {
	return strings.ReplaceAll(filepath.Base(name), " ", "_")
}
