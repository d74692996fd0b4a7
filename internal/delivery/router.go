package delivery

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDHeader = "X-Request-ID"

// HealthCheck reports whether the service's dependencies are reachable.
type HealthCheck func(ctx context.Context) error

func NewRouter(productHandler *ProductHandler, health HealthCheck, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false

	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	router.GET("/health", healthHandler(health, logger))
	productHandler.RegisterRoutes(router)

	return router
}

// RequestID propagates the caller's X-Request-ID or assigns a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDHeader),
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
			"latency":    time.Since(start).String(),
		}).Info("Request completed")
	}
}

func healthHandler(check HealthCheck, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				logger.Errorf("Health check failed: %v", err)
				ErrorResponse(c, http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		SuccessResponse(c, http.StatusOK, "OK", nil)
	}
}
