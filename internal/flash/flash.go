// Package flash carries one-shot messages from a request to the next page the
// same client loads, typically across a redirect.
package flash

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

const (
	CategorySuccess = "success"
	CategoryError   = "error"

	sessionName = "catalog_session"
)

var categories = []string{CategorySuccess, CategoryError}

type Message struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// Middleware installs a signed cookie session used to store flash messages.
func Middleware(secret []byte) gin.HandlerFunc {
	store := cookie.NewStore(secret)
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   3600,
	})
	return sessions.Sessions(sessionName, store)
}

// Add queues messages for the next page and saves the session once.
func Add(c *gin.Context, messages ...Message) error {
	session := sessions.Default(c)
	for _, m := range messages {
		session.AddFlash(m.Text, m.Category)
	}
	return session.Save()
}

func Success(text string) Message {
	return Message{Category: CategorySuccess, Text: text}
}

func Error(text string) Message {
	return Message{Category: CategoryError, Text: text}
}

// Pop returns pending messages and clears them. It must run before the
// response body is written so the updated cookie can still be sent.
func Pop(c *gin.Context) []Message {
	session := sessions.Default(c)

	messages := make([]Message, 0)
	for _, category := range categories {
		for _, v := range session.Flashes(category) {
			if text, ok := v.(string); ok {
				messages = append(messages, Message{Category: category, Text: text})
			}
		}
	}

	if len(messages) > 0 {
		_ = session.Save()
	}
	return messages
}
