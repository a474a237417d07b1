package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"taskhub/pkg/metrics"
)

// RouteFunc resolves a request to its route pattern (e.g. "GET /v1/tasks/{id}")
// so metrics are labeled per route rather than per URL.
type RouteFunc func(r *http.Request) string

// WithMetrics returns a middleware that records a request counter and a
// latency histogram for every handled request, labeled with method, route and
// status code.
func WithMetrics(next http.Handler, meter metric.Meter, route RouteFunc) (http.Handler, error) {
	requests, err := meter.Int64Counter("http.server.request.count",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http.server.duration",
		metric.WithDescription("HTTP request handling duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route(r)),
			attribute.String("status", strconv.Itoa(rec.status)),
		)
		requests.Add(r.Context(), 1, attrs)
		duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
	}), nil
}
