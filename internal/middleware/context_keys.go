package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// contextKey is the type of every key this package stores in a context.
type contextKey string

const (
	loggerKey    = contextKey("logger")
	requestIDKey = contextKey("requestID")
)

// GetRequestIDFromContext returns the request id assigned by StructuredLoggingMiddleware.
func GetRequestIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(requestIDKey)); exists {
		id, ok := v.(string)
		return id, ok
	}
	return requestIDFromCtx(c.Request.Context())
}

func requestIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
