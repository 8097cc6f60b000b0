// Package httpapi exposes one machine instance over HTTP: inspection,
// dispatch-by-name and Prometheus metrics.
package httpapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okvist/espalier"
	"github.com/okvist/espalier/internal/logging"
	"github.com/okvist/espalier/internal/presentation/graph"
	"github.com/okvist/espalier/pkg/script"
)

// Server serializes access to a single machine. The machine itself is
// single-threaded; the mutex makes the HTTP surface its serializing caller.
type Server struct {
	machine    *espalier.Machine
	registry   *script.Registry
	logger     *slog.Logger
	instanceID string

	mu sync.Mutex
}

// NewHandler mounts the API for one machine. A nil logger discards output.
func NewHandler(m *espalier.Machine, registry *script.Registry, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{
		machine:    m,
		registry:   registry,
		logger:     logger,
		instanceID: uuid.NewString(),
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/state", s.state)
	r.Get("/graph", s.renderGraph)
	r.Post("/dispatch", s.dispatch)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

type stateResponse struct {
	InstanceID string `json:"instance_id"`
	State      string `json:"state"`
}

type dispatchRequest struct {
	Event string         `json:"event"`
	With  map[string]any `json:"with,omitempty"`
}

type dispatchResponse struct {
	Event string `json:"event"`
	State string `json:"state"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) state(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	name := s.machine.CurrentStateName()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, stateResponse{InstanceID: s.instanceID, State: name})
}

func (s *Server) renderGraph(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	info := s.machine.Describe()
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(graph.GenerateMermaid(info)))
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Event == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing event name"})
		return
	}

	event, err := s.registry.New(req.Event, req.With)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	s.mu.Lock()
	s.machine.Dispatch(event)
	state := s.machine.CurrentStateName()
	s.mu.Unlock()

	s.logger.Info("dispatched", "event", req.Event, "state", state)
	writeJSON(w, http.StatusOK, dispatchResponse{Event: req.Event, State: state})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "err", err)
	}
}
