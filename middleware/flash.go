package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// flashCategories mirrors the alert levels the templates know how to render.
var flashCategories = []string{"success", "info", "warning", "danger"}

// FlashMessage is one queued notice, consumed on the next page render.
type FlashMessage struct {
	Category string
	Message  string
}

// Flash queues a message under the given category for the next rendered page.
func Flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(message, category)
	_ = session.Save()
}

// TakeFlashes drains all queued flash messages in category order.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	var out []FlashMessage
	for _, category := range flashCategories {
		for _, raw := range session.Flashes(category) {
			if msg, ok := raw.(string); ok {
				out = append(out, FlashMessage{Category: category, Message: msg})
			}
		}
	}
	_ = session.Save()
	return out
}
