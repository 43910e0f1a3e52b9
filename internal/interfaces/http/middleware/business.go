package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/restopos/backend/internal/infrastructure/logger"
	"github.com/restopos/backend/internal/interfaces/http/dto"
)

// BusinessScope requires the X-Business-ID header and reads the optional
// X-Actor-ID header. Both ids are put in the gin context and tagged on the
// request logger.
func BusinessScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID, err := uuid.Parse(c.GetHeader(HeaderBusinessID))
		if err != nil || businessID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeMissingBusiness, "X-Business-ID header must be a valid UUID", GetRequestID(c)))
			return
		}
		c.Set(BusinessIDKey, businessID)
		ctx := logger.WithBusinessID(c.Request.Context(), businessID.String())

		if raw := c.GetHeader(HeaderActorID); raw != "" {
			actorID, err := uuid.Parse(raw)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
					dto.ErrCodeBadRequest, "X-Actor-ID header must be a valid UUID", GetRequestID(c)))
				return
			}
			c.Set(ActorIDKey, actorID)
			ctx = logger.WithActorID(ctx, actorID.String())
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetBusinessID returns the business id set by BusinessScope
func GetBusinessID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(BusinessIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// GetActorID returns the actor id set by BusinessScope, or nil
func GetActorID(c *gin.Context) *uuid.UUID {
	v, ok := c.Get(ActorIDKey)
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}
