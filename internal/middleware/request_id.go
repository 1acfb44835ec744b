package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	ctxKeyRequestID = "request_id"
)

var ridRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]{1,64}$`)

// RequestID keeps a well-formed incoming X-Request-ID or mints a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if !ridRe.MatchString(rid) {
			rid = uuid.NewString()
		}

		c.Set(ctxKeyRequestID, rid)
		c.Header(HeaderRequestID, rid)

		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}
