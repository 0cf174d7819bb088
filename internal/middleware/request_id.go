package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestID = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, honoring one the
// caller already sent so traces can span services.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}
