package userControllers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"storefront/middleware"
	"storefront/models"
)

// ShowRegister renders the registration form.
// GET /register
func ShowRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		renderRegister(c, nil, "", "")
	}
}

// Register creates a new user account with a hashed password. Duplicate
// username or email is validated before the insert so the form can
// re-render with a message instead of surfacing a constraint violation.
// POST /register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		username := strings.TrimSpace(c.PostForm("username"))
		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		confirm := c.PostForm("confirm_password")

		var errs []string
		if len(username) < 3 || len(username) > 20 {
			errs = append(errs, "Username must be between 3 and 20 characters.")
		}
		if _, err := mail.ParseAddress(email); err != nil {
			errs = append(errs, "Enter a valid email address.")
		}
		if len(password) < 6 {
			errs = append(errs, "Password must be at least 6 characters.")
		}
		if password != confirm {
			errs = append(errs, "Passwords must match.")
		}

		if len(errs) == 0 {
			var existing models.User
			err := db.Where("username = ? OR email = ?", username, email).First(&existing).Error
			switch {
			case err == nil:
				if existing.Username == username {
					errs = append(errs, "That username is taken. Please choose a different one.")
				} else {
					errs = append(errs, "That email is taken. Please choose a different one.")
				}
			case !errors.Is(err, gorm.ErrRecordNotFound):
				errs = append(errs, "Registration failed. Please try again.")
			}
		}

		if len(errs) > 0 {
			renderRegister(c, errs, username, email)
			return
		}

		user := models.User{Username: username, Email: email}
		if err := user.SetPassword(password); err != nil {
			renderRegister(c, []string{"Registration failed. Please try again."}, username, email)
			return
		}
		if err := db.Create(&user).Error; err != nil {
			renderRegister(c, []string{"Registration failed. Please try again."}, username, email)
			return
		}

		middleware.Flash(c, "success", "Your account has been created! You are now able to log in")
		c.Redirect(http.StatusFound, "/login")
	}
}

func renderRegister(c *gin.Context, errs []string, username, email string) {
	status := http.StatusOK
	if len(errs) > 0 {
		status = http.StatusBadRequest
	}
	c.HTML(status, "register.html", gin.H{
		"Title":    "Register",
		"Flashes":  middleware.TakeFlashes(c),
		"Errors":   errs,
		"Username": username,
		"Email":    email,
	})
}

// ShowLogin renders the login form.
// GET /login
func ShowLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":   "Login",
			"Flashes": middleware.TakeFlashes(c),
			"Next":    c.Query("next"),
		})
	}
}

// Login verifies credentials and establishes the session principal.
// POST /login
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := middleware.CurrentUser(c); ok {
			c.Redirect(http.StatusFound, "/")
			return
		}

		email := strings.TrimSpace(c.PostForm("email"))
		password := c.PostForm("password")
		remember := c.PostForm("remember") != ""

		var user models.User
		err := db.Where("email = ?", email).First(&user).Error
		if err != nil || !user.CheckPassword(password) {
			middleware.Flash(c, "danger", "Login Unsuccessful. Please check email and password")
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"Title":   "Login",
				"Flashes": middleware.TakeFlashes(c),
				"Next":    c.PostForm("next"),
			})
			return
		}

		if err := middleware.SignIn(c, &user, remember); err != nil {
			c.String(http.StatusInternalServerError, "Failed to start session")
			return
		}

		c.Redirect(http.StatusFound, safeNext(c.PostForm("next")))
	}
}

// Logout clears the session principal unconditionally.
// GET /logout
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = middleware.SignOut(c)
		c.Redirect(http.StatusFound, "/")
	}
}

// safeNext only honors local redirect targets; anything else goes home.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
