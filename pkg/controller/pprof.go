package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux builds a mux serving the runtime profiling endpoints. The index
// handler covers the named profiles (heap, goroutine, ...), the rest need
// explicit routes.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
