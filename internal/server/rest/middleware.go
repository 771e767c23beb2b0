package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/userdb/internal/common"
)

const (
	requestIDHeader = common.RequestIDHeaderName
	requestIDKey    = "request_id"
	unmatchedRoute  = "unmatched"
)

// requestID propagates the caller's X-Request-ID or generates a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func route(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return unmatchedRoute
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		args := []any{
			"request_id", c.GetString(requestIDKey),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", route(c),
			"status", status,
			"latency", time.Since(start),
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		ctx := c.Request.Context()
		switch {
		case status >= http.StatusInternalServerError:
			s.logger.Error(ctx, "request", args...)
		default:
			s.logger.Info(ctx, "request", args...)
		}
	}
}

func (s *HTTPServer) requestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.metrics.ObserveRequest(c.Request.Method, route(c), c.Writer.Status(), time.Since(start))
	}
}

func (s *HTTPServer) recoverPanic(c *gin.Context, recovered any) {
	s.logger.Error(context.Background(), "panic recovered",
		"request_id", c.GetString(requestIDKey), "panic", recovered)
	writeError(c, http.StatusInternalServerError, internalErrorDetail)
}
