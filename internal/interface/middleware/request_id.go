package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/go-question-bank/pkg/helpers"
)

const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware injects a unique request_id into the Gin context and the
// request context for every request, reusing a well-formed incoming header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Request = c.Request.WithContext(helpers.WithRequestID(c.Request.Context(), id))
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
