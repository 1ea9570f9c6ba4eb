package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Request-scoped middleware: request id propagation and access logging.

type contextKey string

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = contextKey("requestID")
)

// logRequest writes one access line per request. The level follows the status
// class so store outages stand out from rejected input.
func (s *Server) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := s.log.With(
			slog.String("request_id", getRequestID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		log.Debug("request started", slog.String("remote_addr", r.RemoteAddr))

		start := time.Now()
		wrapper := newResponseWriterWrapper(w)

		next.ServeHTTP(wrapper, r)

		attrs := []any{
			slog.String("route", routePattern(r)),
			slog.Int("status", wrapper.statusCode),
			slog.Duration("duration", time.Since(start)),
		}

		switch {
		case wrapper.statusCode >= http.StatusInternalServerError:
			log.Error("request completed", attrs...)
		case wrapper.statusCode >= http.StatusBadRequest:
			log.Warn("request completed", attrs...)
		default:
			log.Info("request completed", attrs...)
		}
	})
}

// requestID reuses the caller's X-Request-ID or issues a new one, echoing it
// back on the response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(requestIDHeader, id)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func getRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}

	return ""
}
