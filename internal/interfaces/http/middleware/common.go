// Package middleware provides HTTP middleware for the inventory API.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Context keys shared with handlers and the logger middleware
const (
	RequestIDKey  = "request_id"
	BusinessIDKey = "business_id"
	ActorIDKey    = "actor_id"
)

// Request headers
const (
	HeaderRequestID  = "X-Request-ID"
	HeaderBusinessID = "X-Business-ID"
	HeaderActorID    = "X-Actor-ID"
)

// MaxRequestIDLength caps client-supplied request ids
const MaxRequestIDLength = 128

// RequestID adds a request id to each request, keeping a client-supplied
// one when it is short enough
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" || len(requestID) > MaxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)
		c.Next()
	}
}

// GetRequestID returns the request id set by RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
