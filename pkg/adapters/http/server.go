// Package http exposes a built machine over HTTP for inspection: the tree
// structure, a Mermaid rendering of it, and the live active paths of the
// actors the host chooses to publish.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/canopy/internal/presentation/graph"
	"github.com/aretw0/canopy/pkg/domain"
	"github.com/aretw0/canopy/pkg/ports"
)

// ActorSource reports the currently published actors and their active paths.
// The host decides which actors to expose; the server polls on demand.
type ActorSource func() map[string][]domain.ID

// Server serves the inspector API for one machine.
type Server struct {
	inspector ports.Inspector
	actors    ActorSource
	metrics   http.Handler
	logger    *slog.Logger
}

// Option configures the Server.
type Option func(*Server)

// WithActorSource publishes live actor paths at /actors.
func WithActorSource(src ActorSource) Option {
	return func(s *Server) {
		s.actors = src
	}
}

// WithMetricsHandler mounts a metrics handler (e.g. promhttp.Handler()) at
// /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates the inspector HTTP handler for a machine.
func NewHandler(inspector ports.Inspector, opts ...Option) http.Handler {
	s := &Server{
		inspector: inspector,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/tree", s.handleTree)
	r.Get("/graph", s.handleGraph)
	r.Get("/actors", s.handleActors)
	r.Get("/actors/{id}", s.handleActor)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return enableCORS(r)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.inspector.Describe())
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	var overlay *graph.Overlay
	if actorID := r.URL.Query().Get("actor"); actorID != "" && s.actors != nil {
		if path, ok := s.actors()[actorID]; ok {
			overlay = &graph.Overlay{ActivePath: path}
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(graph.GenerateMermaid(s.inspector.Describe(), overlay))); err != nil {
		s.logger.Error("graph response write failed", "err", err)
	}
}

func (s *Server) handleActors(w http.ResponseWriter, r *http.Request) {
	if s.actors == nil {
		http.Error(w, "no actor source configured", http.StatusNotFound)
		return
	}
	s.writeJSON(w, s.actors())
}

func (s *Server) handleActor(w http.ResponseWriter, r *http.Request) {
	if s.actors == nil {
		http.Error(w, "no actor source configured", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	path, ok := s.actors()[id]
	if !ok {
		http.Error(w, "actor not found", http.StatusNotFound)
		return
	}

	s.writeJSON(w, map[string]any{
		"id":     id,
		"path":   path,
		"height": s.inspector.Height(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
