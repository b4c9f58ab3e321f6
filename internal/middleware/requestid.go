package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIdKey is the gin context key holding the request id.
	RequestIdKey = "request_id"

	requestIdHeader = "X-Request-ID"
)

// RequestId assigns a uuid to every request, honoring one supplied by
// the client, and echoes it back in the response header.
func RequestId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIdHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIdKey, id)
		c.Header(requestIdHeader, id)
		c.Next()
	}
}

// RequestIdFrom reads the request id set by the middleware.
func RequestIdFrom(c *gin.Context) string {
	return c.GetString(RequestIdKey)
}
