package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rbright/windowcaster/internal/fsm"
	"github.com/rbright/windowcaster/internal/render"
	"github.com/rbright/windowcaster/internal/version"
)

// Report is the JSON body served at /status.
type Report struct {
	Listener fsm.State       `json:"listener"`
	Addr     string          `json:"addr,omitempty"`
	Client   string          `json:"client,omitempty"`
	Renderer render.Snapshot `json:"renderer"`
	Version  version.Info    `json:"version"`
}

// ReportFunc produces the current status report.
type ReportFunc func() Report

// NewRouter mounts /metrics, /healthz, and /status.
func NewRouter(metricsHandler http.Handler, report ReportFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", metricsHandler)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if report().Listener != fsm.StateRunning {
			http.Error(w, "not serving", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(report())
	})

	return r
}
