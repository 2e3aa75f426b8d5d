// Package httpapi exposes the machine store and the acceptance decision
// over a JSON HTTP API.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/horacekj/pda-emulator/internal/logging"
	"github.com/horacekj/pda-emulator/internal/metrics"
	"github.com/horacekj/pda-emulator/pkg/automaton"
	"github.com/horacekj/pda-emulator/pkg/ports"
	"github.com/horacekj/pda-emulator/pkg/registry"
	"github.com/horacekj/pda-emulator/pkg/schema"
)

// Server routes machine CRUD and accept queries to a MachineStore,
// keeping a registry of compiled machines as a cache.
type Server struct {
	store   ports.MachineStore
	cache   *registry.Registry
	metrics *metrics.Metrics
	promReg *prometheus.Registry
	logger  *slog.Logger
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the HTTP handler over the given store.
func NewHandler(store ports.MachineStore, opts ...Option) http.Handler {
	promReg := prometheus.NewRegistry()
	server := &Server{
		store:   store,
		cache:   registry.NewRegistry(),
		metrics: metrics.New(promReg),
		promReg: promReg,
		logger:  logging.NewNop(),
	}

	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	r.Route("/machines", func(r chi.Router) {
		r.Get("/", server.listMachines)
		r.Put("/{name}", server.putMachine)
		r.Get("/{name}", server.getMachine)
		r.Delete("/{name}", server.deleteMachine)
		r.Post("/{name}/accept", server.accept)
	})

	return r
}

type acceptRequest struct {
	Input string `json:"input"`
}

type acceptResponse struct {
	Accepted bool `json:"accepted"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// putMachine validates the posted document and stores it under the URL
// name. The document never reaches the store unless it builds.
func (s *Server) putMachine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := payload["name"]; !ok {
		payload["name"] = name
	}

	doc, err := schema.FromMap(payload)
	if err != nil {
		s.metrics.BuildFailures.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if doc.Name != name {
		writeError(w, http.StatusBadRequest, "document name does not match URL")
		return
	}

	machine, err := doc.Build()
	if err != nil {
		s.metrics.BuildFailures.Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.Save(r.Context(), name, doc); err != nil {
		s.logger.Error("failed to save machine", "machine", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save machine")
		return
	}
	s.cache.Register(name, machine)

	s.logger.Info("machine stored", "machine", name, "strict", machine.Strict())
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, map[string]string{"name": name})
}

func (s *Server) getMachine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	doc, err := s.store.Load(r.Context(), name)
	if err != nil {
		if errors.Is(err, ports.ErrMachineNotFound) {
			writeError(w, http.StatusNotFound, "machine not found")
			return
		}
		s.logger.Error("failed to load machine", "machine", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load machine")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, doc)
}

func (s *Server) deleteMachine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.store.Delete(r.Context(), name); err != nil {
		s.logger.Error("failed to delete machine", "machine", name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete machine")
		return
	}
	s.cache.Remove(name)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listMachines(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list machines", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list machines")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, map[string][]string{"machines": names})
}

// accept runs the membership decision for the named machine. Compiled
// machines are cached; a cache miss falls back to the store.
func (s *Server) accept(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var body acceptRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	machine, err := s.cache.Lookup(name)
	if err != nil {
		doc, loadErr := s.store.Load(r.Context(), name)
		if loadErr != nil {
			if errors.Is(loadErr, ports.ErrMachineNotFound) {
				writeError(w, http.StatusNotFound, "machine not found")
				return
			}
			s.logger.Error("failed to load machine", "machine", name, "error", loadErr)
			writeError(w, http.StatusInternalServerError, "failed to load machine")
			return
		}
		machine, err = doc.Build()
		if err != nil {
			s.logger.Error("stored machine no longer builds", "machine", name, "error", err)
			writeError(w, http.StatusInternalServerError, "stored machine is invalid")
			return
		}
		s.cache.Register(name, machine)
	}

	start := time.Now()
	accepted, err := machine.Accepts(body.Input)
	s.metrics.AcceptDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, automaton.ErrInvalidSymbol) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.logger.Error("accept query failed", "machine", name, "error", err)
		writeError(w, http.StatusInternalServerError, "accept query failed")
		return
	}

	verdict := "reject"
	if accepted {
		verdict = "accept"
	}
	s.metrics.AcceptTotal.WithLabelValues(name, verdict).Inc()
	s.logger.Debug("accept query", "machine", name, "verdict", verdict)

	w.Header().Set("Content-Type", "application/json")
	writeJSON(w, acceptResponse{Accepted: accepted})
}

func writeJSON(w http.ResponseWriter, v any) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already out; nothing left to do but note it.
		slog.Debug("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
