// Package flash implements one-shot messages carried across a redirect in a
// short-lived cookie, the way server-rendered form flows report success and
// error outcomes.
package flash

import (
	"encoding/base64"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "registrar_flash"

// Levels understood by the templates.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Message is a single flash message.
type Message struct {
	Level string
	Text  string
}

// Set queues a message for the next rendered page.
func Set(c *gin.Context, level, text string) {
	value := base64.URLEncoding.EncodeToString([]byte(level + "|" + text))
	c.SetCookie(cookieName, value, 60, "/", "", false, true)
}

// Pop returns the pending message, if any, and clears it.
func Pop(c *gin.Context) *Message {
	value, err := c.Cookie(cookieName)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	decoded, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	level, text, found := strings.Cut(string(decoded), "|")
	if !found {
		return nil
	}
	return &Message{Level: level, Text: text}
}

// Error queues an error message.
func Error(c *gin.Context, text string) {
	Set(c, LevelError, text)
}

// Success queues a success message.
func Success(c *gin.Context, text string) {
	Set(c, LevelSuccess, text)
}
