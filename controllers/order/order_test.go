package orderControllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"storefront/config"
	"storefront/models"
	"storefront/routes"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{DisableForeignKeyConstraintWhenMigrating: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}, &models.Order{}))

	cfg := &config.Config{
		SessionSecret: "test-secret",
		BaseURL:       "http://localhost:8080",
		UploadDir:     t.TempDir(),
	}

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

func signUpAndLogin(t *testing.T, r *gin.Engine, db *gorm.DB, username string) (*models.User, []*http.Cookie) {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com"}
	require.NoError(t, user.SetPassword("password1"))
	require.NoError(t, db.Create(&user).Error)

	form := url.Values{"email": {user.Email}, "password": {"password1"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	return &user, w.Result().Cookies()
}

func do(r *gin.Engine, method, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckout_EmptyCartRedirectsHomeWithWarning(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, models.Seed(db))
	_, cookies := signUpAndLogin(t, r, db, "alice")

	w := do(r, http.MethodGet, "/checkout", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestCheckout_ShowsItemsAndTotal(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, models.Seed(db))
	_, cookies := signUpAndLogin(t, r, db, "alice")

	do(r, http.MethodPost, "/add_to_cart/2", cookies) // Smart Watch 249.50

	w := do(r, http.MethodGet, "/checkout", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Smart Watch")
	assert.Contains(t, w.Body.String(), "Total: $249.50")
}

func TestPlaceOrder_SnapshotsTotalAndClearsCart(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, models.Seed(db))
	user, cookies := signUpAndLogin(t, r, db, "alice")

	do(r, http.MethodPost, "/add_to_cart/1", cookies) // 199.99
	do(r, http.MethodPost, "/add_to_cart/1", cookies) // x2
	do(r, http.MethodPost, "/add_to_cart/4", cookies) // 120.00

	w := do(r, http.MethodPost, "/place_order", cookies)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Order placed successfully!")

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)

	var orders []models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.InDelta(t, 519.98, orders[0].TotalAmount, 1e-9)
	assert.NotEmpty(t, orders[0].OrderRef)
}

func TestPlaceOrder_EmptyCartPlacesNothing(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, models.Seed(db))
	user, cookies := signUpAndLogin(t, r, db, "alice")

	w := do(r, http.MethodPost, "/place_order", cookies)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestPlaceOrder_TotalIsNotRecomputedLater(t *testing.T) {
	r, db := setupRouter(t)
	require.NoError(t, models.Seed(db))
	user, cookies := signUpAndLogin(t, r, db, "alice")

	do(r, http.MethodPost, "/add_to_cart/3", cookies) // Travel Backpack 79.00
	w := do(r, http.MethodPost, "/place_order", cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// A later price change must not touch the snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", 3).Update("price", 999.0).Error)

	var order models.Order
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&order).Error)
	assert.InDelta(t, 79.00, order.TotalAmount, 1e-9)
}
