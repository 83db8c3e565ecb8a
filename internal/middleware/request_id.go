package middleware

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID tags every request with an ID, reusing a well-formed incoming
// X-Request-ID and echoing it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestIDFromContext extracts the request ID from the context
func GetRequestIDFromContext(c *gin.Context) (string, error) {
	v, exists := c.Get(RequestIDKey)
	if !exists {
		return "", errors.New("request ID not found in context")
	}

	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("request ID has unexpected type: %T", v)
	}

	return id, nil
}
