package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"taskhub/pkg/controller"
)

func TestPprofMux_ServesProfiles(t *testing.T) {
	mux := controller.PprofMux()

	for _, path := range []string{"/", "/cmdline"} {
		req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		res := rec.Result()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", path, res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); ct == "" {
			t.Errorf("%s: expected Content-Type to be set", path)
		}
	}
}
