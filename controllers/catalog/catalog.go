package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/middleware"
	"storefront/models"
)

// PageSize is the fixed number of products per catalog page.
const PageSize = 4

// Home renders the storefront catalog with optional category filter,
// free-text search and pagination.
// GET / and GET /home, query params: page, category, q
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		category := c.Query("category")
		search := c.Query("q")

		query := db.Model(&models.Product{})
		if category != "" {
			query = query.Where("category = ?", category)
		}
		if search != "" {
			like := "%" + search + "%"
			query = query.Where("name LIKE ? OR description LIKE ?", like, like)
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to load products")
			return
		}

		var products []models.Product
		if err := query.Order("id").
			Offset((page - 1) * PageSize).
			Limit(PageSize).
			Find(&products).Error; err != nil {
			c.String(http.StatusInternalServerError, "Failed to load products")
			return
		}

		categories, err := DistinctCategories(db)
		if err != nil {
			c.String(http.StatusInternalServerError, "Failed to load categories")
			return
		}

		user, _ := middleware.CurrentUser(c)
		c.HTML(http.StatusOK, "index.html", gin.H{
			"Title":      "Home",
			"User":       user,
			"Flashes":    middleware.TakeFlashes(c),
			"Products":   products,
			"Categories": categories,
			"Category":   category,
			"Query":      search,
			"Page":       page,
			"PrevPage":   page - 1,
			"NextPage":   page + 1,
			"HasPrev":    page > 1,
			"HasNext":    int64(page*PageSize) < total,
		})
	}
}

// DistinctCategories returns the set of non-empty categories across the
// whole catalog, for the filter UI.
func DistinctCategories(db *gorm.DB) ([]string, error) {
	var categories []string
	err := db.Model(&models.Product{}).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}
