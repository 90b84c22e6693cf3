package session

import "github.com/gin-gonic/gin"

const flashCookie = "clinic_flash"

// SetFlash stores a one-shot notification for the next rendered page. The
// cookie is short-lived so a message that is never rendered still expires.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

// TakeFlash returns the pending notification, if any, and expires it so it is
// rendered at most once.
func TakeFlash(c *gin.Context) string {
	v, err := c.Cookie(flashCookie)
	if err != nil || v == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return v
}
