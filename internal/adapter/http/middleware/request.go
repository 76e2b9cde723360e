package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Timomoulin/Todo0/pkg/requestctx"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
	maxRequestIDLen = 64
)

// RequestIDMiddleware reuses a sane incoming X-Request-ID or generates one,
// and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestContextMiddleware copies the client address and request id into
// the request context so services and the auditor can read them.
func RequestContextMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := requestctx.WithClientIP(c.Request.Context(), c.ClientIP())
		ctx = requestctx.WithRequestID(ctx, GetRequestID(c))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
