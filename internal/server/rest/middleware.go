package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/socialscribe/internal/common"
	"github.com/dmitrijs2005/socialscribe/internal/logging"
	"github.com/dmitrijs2005/socialscribe/internal/server/metrics"
	"github.com/dmitrijs2005/socialscribe/internal/server/models"
	"github.com/dmitrijs2005/socialscribe/internal/server/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDKey = "request_id"
	briefKey     = "brief"
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(common.RequestIDHeaderName)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(common.RequestIDHeaderName, requestID)
		c.Next()
	}
}

// RecoveryMiddleware turns a handler panic into a 500 envelope.
func RecoveryMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), "Request handler panic",
					"error", err,
					"request_id", c.GetString(requestIDKey),
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, envelope{Message: msgInternal})
			}
		}()

		c.Next()
	}
}

// LoggingMiddleware writes one structured line per request.
func LoggingMiddleware(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", c.GetString(requestIDKey),
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(c.Request.Context(), "HTTP request", args...)
		case status >= http.StatusBadRequest:
			logger.Warn(c.Request.Context(), "HTTP request", args...)
		default:
			logger.Info(c.Request.Context(), "HTTP request", args...)
		}
	}
}

// MetricsMiddleware records request counts and latency by route template.
func MetricsMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}

// CORSMiddleware answers cross-origin requests from the allowed origins only.
// Requests from any other origin get no CORS headers. Preflight requests end
// here with 204.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		origins[strings.TrimRight(o, "/")] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Writer.Header().Add("Vary", "Origin")
			if _, ok := origins[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, "+common.RequestIDHeaderName)
				c.Header("Access-Control-Expose-Headers", common.RequestIDHeaderName)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// ValidateIDParam rejects requests whose path parameter is not a post id.
func ValidateIDParam(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := validation.ValidateID(c.Param(param)); err != nil {
			abortBadRequest(c, msgInvalidID)
			return
		}
		c.Next()
	}
}

// ValidateBriefMiddleware binds the generation request and checks it before
// any model is called. The trimmed brief is stored on the context.
func ValidateBriefMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var b models.Brief
		if err := c.ShouldBindJSON(&b); err != nil {
			abortBadRequest(c, msgInvalidRequest)
			return
		}

		b.Topic = strings.TrimSpace(b.Topic)
		b.Constraints = strings.TrimSpace(b.Constraints)

		if errs := validation.ValidateBrief(b); len(errs) > 0 {
			c.AbortWithStatusJSON(http.StatusBadRequest, envelope{
				Message: "Validation failed",
				Errors:  validation.Messages(errs),
			})
			return
		}

		c.Set(briefKey, b)
		c.Next()
	}
}
