// Package http serves generator operations over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/llfsmgen/llfsmgen"
	"github.com/llfsmgen/llfsmgen/pkg/domain"
)

// Generator is the part of llfsmgen.Generator used by the server.
type Generator interface {
	Run(ctx context.Context, cmd llfsmgen.Command) error
	Graph(ctx context.Context, cmd llfsmgen.GraphCommand) (string, error)
	ReportText(path string) (string, error)
	MetricsHandler() http.Handler
}

// Server runs one operation at a time; requests wait for the running
// operation to finish.
type Server struct {
	Generator Generator
	Logger    *slog.Logger

	mu sync.Mutex
}

// Option configures the handler.
type Option func(*options)

type options struct {
	allowedOrigins []string
}

// WithAllowedOrigins lists the browser origins that may call the API. "*"
// allows any origin. Without it, requests carrying an Origin header are
// refused.
func WithAllowedOrigins(origins ...string) Option {
	return func(o *options) {
		o.allowedOrigins = append(o.allowedOrigins, origins...)
	}
}

// NewHandler creates the HTTP handler for gen.
func NewHandler(gen Generator, logger *slog.Logger, opts ...Option) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	s := &Server{Generator: gen, Logger: logger}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Handle("/metrics", gen.MetricsHandler())

	r.Post("/model", command(s, func(req modelRequest) llfsmgen.Command {
		return llfsmgen.ModelCommand{Path: req.Path, ExportModel: req.ExportModel}
	}))
	r.Post("/vhdl", command(s, func(req vhdlRequest) llfsmgen.Command {
		return llfsmgen.VHDLCommand{Path: req.Path, IncludeKripkeStructure: req.IncludeKripkeStructure}
	}))
	r.Post("/clean", command(s, func(req cleanRequest) llfsmgen.Command {
		return llfsmgen.CleanCommand{Path: req.Path, BuildFolderOnly: req.BuildFolderOnly}
	}))
	r.Post("/install", command(s, func(req installRequest) llfsmgen.Command {
		return llfsmgen.InstallCommand{Path: req.Path, InstallPath: req.InstallPath, Vivado: req.Vivado}
	}))
	r.Post("/graph", s.graph)
	r.Get("/report", s.report)

	return checkOrigin(r, o.allowedOrigins, logger)
}

// checkOrigin answers CORS for the allowed origins and refuses any request
// from another origin. Requests without an Origin header, such as those of
// curl or the CLI, pass through.
func checkOrigin(next http.Handler, allowed []string, logger *slog.Logger) http.Handler {
	allowAll := slices.Contains(allowed, "*")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Add("Vary", "Origin")
		if !allowAll && !slices.Contains(allowed, origin) {
			logger.Warn("refused cross-origin request", "origin", origin, "path", r.URL.Path)
			writeJSON(w, http.StatusForbidden, errorResponse{Message: "Origin not allowed"})
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"app":     "llfsmgen-http",
		"version": llfsmgen.Version,
	})
}

// command adapts a request body decoder and a Command constructor into a
// handler that runs the command under the server lock.
func command[T any](s *Server, build func(T) llfsmgen.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body: " + err.Error()})
			return
		}
		cmd := build(req)

		s.mu.Lock()
		err := s.Generator.Run(r.Context(), cmd)
		s.mu.Unlock()

		if err != nil {
			s.writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *Server) graph(w http.ResponseWriter, r *http.Request) {
	var req graphRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body: " + err.Error()})
		return
	}

	s.mu.Lock()
	written, err := s.Generator.Graph(r.Context(), llfsmgen.GraphCommand{
		Path:        req.Path,
		IsMachine:   req.IsMachine,
		Destination: req.Destination,
		Format:      req.Format,
	})
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, graphResponse{File: written})
}

func (s *Server) report(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Missing path query parameter"})
		return
	}

	s.mu.Lock()
	text, err := s.Generator.ReportText(path)
	s.mu.Unlock()

	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(text))
}

// writeError maps generation errors to 422 with their kind, and anything
// else (I/O, decoding) to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var ge *domain.GenerationError
	if errors.As(err, &ge) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Kind: ge.Kind.String(), Message: err.Error()})
		return
	}
	s.Logger.Error("operation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
