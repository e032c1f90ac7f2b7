package server

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pdf-catalog/internal/catalog"
	"pdf-catalog/internal/logging"
)

const (
	statusIdle     = "idle"
	statusScanning = "scanning"
)

// Server exposes the scanner's state over HTTP: a health probe, the
// current scan progress, the latest catalog, and Prometheus metrics.
// It holds no logic of its own; the scanning goroutine pushes state in
// through the setters.
type Server struct {
	srv *http.Server

	mu       sync.Mutex
	scanning bool
	current  int
	total    int
	cat      catalog.Catalog
}

// New returns a Server listening on addr once Start is called.
func New(addr string) *Server {
	s := &Server{}
	s.srv = &http.Server{
		Addr:        addr,
		Handler:     s.router(),
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
	return s
}

func (s *Server) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.healthCheck).Methods("GET")
	r.HandleFunc("/progress", s.getProgress).Methods("GET")
	r.HandleFunc("/api/catalog", s.getCatalog).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}

// Start begins serving in the calling goroutine and blocks until the
// listener closes. http.ErrServerClosed is the normal shutdown signal
// and is not reported as an error.
func (s *Server) Start() error {
	logging.Info("HTTP server listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the listener gracefully, waiting for in-flight
// requests up to the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// SetScanning marks the start or end of a scan run.
func (s *Server) SetScanning(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scanning = active
}

// SetProgress records the latest progress update.
func (s *Server) SetProgress(current, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = current
	s.total = total
}

// SetCatalog publishes the finished catalog.
func (s *Server) SetCatalog(cat catalog.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cat = cat
}

// HealthResponse is the health probe payload.
type HealthResponse struct {
	Status       string `json:"status"`
	Scanning     bool   `json:"scanning"`
	CatalogRows  int    `json:"catalogRows"`
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := HealthResponse{
		Status:       statusIdle,
		Scanning:     s.scanning,
		CatalogRows:  len(s.cat),
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
	}
	s.mu.Unlock()

	if resp.Scanning {
		resp.Status = statusScanning
	}
	writeJSON(w, http.StatusOK, resp)
}

// ProgressResponse is the scan progress payload.
type ProgressResponse struct {
	Scanning bool `json:"scanning"`
	Current  int  `json:"current"`
	Total    int  `json:"total"`
}

func (s *Server) getProgress(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	resp := ProgressResponse{
		Scanning: s.scanning,
		Current:  s.current,
		Total:    s.total,
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getCatalog(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	cat := s.cat
	s.mu.Unlock()
	if cat == nil {
		cat = catalog.Catalog{}
	}
	writeJSON(w, http.StatusOK, cat)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn("encoding response: %v", err)
	}
}
