package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/models"
)

const (
	sessionUserKey = "user_id"
	contextUserKey = "current_user"

	// rememberMaxAge keeps the session cookie for 30 days when the user
	// checks "remember me"; otherwise the cookie lasts for the browser
	// session only.
	rememberMaxAge = 30 * 24 * 60 * 60
)

// LoadUser resolves the session principal once per request and stores the
// User in the request context. Requests without a valid session pass
// through unauthenticated.
func LoadUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		idVal := session.Get(sessionUserKey)
		if idVal == nil {
			c.Next()
			return
		}
		id, ok := idVal.(uint)
		if !ok {
			c.Next()
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			// Stale session pointing at a deleted user.
			session.Delete(sessionUserKey)
			_ = session.Save()
			c.Next()
			return
		}

		c.Set(contextUserKey, &user)
		c.Next()
	}
}

// CurrentUser returns the authenticated principal for this request, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// RequireLogin redirects unauthenticated requests to the login page,
// preserving the original path in the "next" query parameter.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			Flash(c, "info", "Please log in to access this page.")
			c.Redirect(http.StatusFound, "/login?next="+c.Request.URL.Path)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin forbids the request unless the principal is an admin.
// Anonymous and authenticated non-admin requests both get 403.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || !user.IsAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// SignIn establishes the session principal. With remember set, the cookie
// survives the browser session for 30 days.
func SignIn(c *gin.Context, user *models.User, remember bool) error {
	session := sessions.Default(c)
	maxAge := 0
	if remember {
		maxAge = rememberMaxAge
	}
	session.Options(sessions.Options{Path: "/", MaxAge: maxAge, HttpOnly: true})
	session.Set(sessionUserKey, user.ID)
	return session.Save()
}

// SignOut clears the session principal unconditionally.
func SignOut(c *gin.Context) error {
	session := sessions.Default(c)
	session.Delete(sessionUserKey)
	return session.Save()
}
