package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request ID; an incoming value is reused.
const RequestIDHeader = "X-Request-ID"

// RequestLogger tags every request with an ID and logs method, path, status
// and duration once the handler chain returns.
func RequestLogger(log *zap.Logger) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		start := time.Now()

		id := e.Request.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		e.Response.Header().Set(RequestIDHeader, id)

		err := e.Next()

		fields := []zap.Field{
			zap.String("request_id", id),
			zap.String("method", e.Request.Method),
			zap.String("path", e.Request.URL.Path),
			zap.Int("status", e.Status()),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			log.Warn("http: request error", append(fields, zap.Error(err))...)
			return err
		}
		log.Info("http: request", fields...)
		return nil
	}
}
