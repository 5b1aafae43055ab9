package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"quotecalc/services"
)

// GetRequestID extracts the request id set by RequestLogMiddleware.
func GetRequestID(r *http.Request) string {
	if val, ok := r.Context().Value(services.RequestIDKey).(string); ok {
		return val
	}
	return ""
}

// RequestLogMiddleware tags every request with an id (reusing an incoming
// X-Request-ID), stores it in the request context and logs the outcome.
func RequestLogMiddleware(logger *zap.Logger) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		e.Response.Header().Set("X-Request-ID", id)

		ctx := context.WithValue(e.Request.Context(), services.RequestIDKey, id)
		e.Request = e.Request.WithContext(ctx)

		start := time.Now()
		err := e.Next()
		logger.Debug("request",
			zap.String("request_id", id),
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return err
	}
}
