package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskhub/pkg/logger"
)

// statusRecorder remembers the status code written by the wrapped handler so
// the access log can report it.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP resolves the originating client address of a request. Proxy
// headers take precedence over the socket's remote address.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// "client, proxy1, proxy2", the left-most entry is the client
		ips := strings.Split(xff, ",")

		return strings.TrimSpace(ips[0])
	}

	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is the type for context keys set by this package, distinct from
// other packages' keys.
type CtxKey string

const (
	// RequestIDKey holds the request ID assigned by WithLogger.
	RequestIDKey CtxKey = "RequestID"
)

// WithLogger assigns each request an ID (taken from the X-Request-Id header
// when the caller provides one), stores a logger carrying that ID in the
// request context and emits an access log line once the handler returns. The
// ID is echoed back on the response so clients can correlate reports.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx = context.WithValue(ctx, RequestIDKey, requestID)
		w.Header().Set("X-Request-Id", requestID)

		ctx = logger.WithFields(ctx, zap.String(string(RequestIDKey), requestID))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r.WithContext(ctx))

		logger.Info(ctx, "Access log",
			zap.String("method", r.Method),
			zap.String("url", r.URL.String()),
			zap.Int("status_code", rec.status),
			zap.Float64("latency", time.Since(start).Seconds()),
			zap.String("client_ip", GetClientIP(r)),
			zap.String("user_agent", r.UserAgent()),
			zap.String("referer", r.Referer()),
		)
	})
}
