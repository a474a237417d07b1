package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"taskhub/pkg/controller"
)

func TestWithMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h, err := controller.WithMetrics(next, mp.Meter("test"), func(r *http.Request) string {
		return "GET /test"
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	}

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("could not collect metrics: %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http.server.request.count" {
				continue
			}
			found = true
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("unexpected data type %T", m.Data)
			}
			if len(sum.DataPoints) != 1 {
				t.Fatalf("expected one data point, got %d", len(sum.DataPoints))
			}
			if sum.DataPoints[0].Value != 3 {
				t.Fatalf("expected 3 requests, got %d", sum.DataPoints[0].Value)
			}
		}
	}
	if !found {
		t.Fatalf("request counter not found")
	}
}
