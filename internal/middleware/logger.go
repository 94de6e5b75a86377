package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habithub/backend/internal/logger"
	"github.com/JonnyWalker81/habithub/backend/internal/metrics"
)

// RequestIDHeader carries the correlation id in and out of the API
const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or generates one, and stores
// it on the gin context and on the request context with a scoped logger
func RequestID(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithRequestID(c.Request.Context(), c.GetHeader(RequestIDHeader))
		requestID := logger.RequestIDFromContext(ctx)
		ctx = logger.WithLogger(ctx, log.WithContext(ctx))

		c.Set("request_id", requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger writes one access log entry per request and feeds the request
// metrics. m may be nil.
func Logger(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		m.ObserveRequest(method, c.FullPath(), status, latency)

		fields := []logger.Field{
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", status),
			logger.Duration("latency", latency),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, logger.String("errors", c.Errors.String()))
		}

		log := logger.Ctx(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("request failed", fields...)
		case status >= 400:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request handled", fields...)
		}
	}
}
