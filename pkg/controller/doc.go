// Package controller holds the HTTP middlewares the API server wraps its
// routes with, plus a mux for the profiling endpoints.
//
//   - WithCORS answers preflight requests and adds CORS headers for
//     allowlisted origins.
//   - WithLogger assigns request IDs, scopes the logger to the request and
//     writes access logs.
//   - WithMetrics records per-route request counts and latency histograms.
//   - PprofMux serves net/http/pprof.
package controller
