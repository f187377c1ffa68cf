package controller

import (
	"net/http"
	"net/http/pprof"
)

// pprofPrefix is where the profiling endpoints are mounted.
const pprofPrefix = "/debug/pprof/"

func mountPprof(mux *http.ServeMux) {
	mux.HandleFunc(pprofPrefix, pprof.Index)
	mux.HandleFunc(pprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(pprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(pprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(pprofPrefix+"trace", pprof.Trace)
}
