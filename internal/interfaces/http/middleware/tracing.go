package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
}

// Tracing returns OpenTelemetry tracing middleware.
// It wraps otelgin, so span names follow "HTTP METHOD route" (e.g. "POST /api/v1/stock/adjust").
func Tracing(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	return otelgin.Middleware(cfg.ServiceName)
}

// SpanEnricher copies the request, business and actor ids onto the request
// span and marks 4xx/5xx responses as errors. Place it after Tracing and
// BusinessScope.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}

		if requestID := GetRequestID(c); requestID != "" {
			span.SetAttributes(attribute.String("request_id", requestID))
		}
		if businessID, ok := GetBusinessID(c); ok {
			span.SetAttributes(attribute.String("business_id", businessID.String()))
		}
		if actorID := GetActorID(c); actorID != nil {
			span.SetAttributes(attribute.String("actor_id", actorID.String()))
		}

		c.Next()

		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			return
		}
		span.SetAttributes(attribute.Int("http.status_code", status))
		switch {
		case status >= http.StatusInternalServerError:
			span.SetStatus(codes.Error, "Internal Server Error")
		case status == http.StatusNotFound:
			span.SetStatus(codes.Error, "Not Found")
		case status == http.StatusConflict:
			span.SetStatus(codes.Error, "Conflict")
		default:
			span.SetStatus(codes.Error, "Client Error")
		}
	}
}
