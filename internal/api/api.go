// Package api exposes the adaptation pipeline as a small HTTP API.
//
// The API mirrors the CLI operations one to one: adapt, validate, and
// fix, plus a health probe. Request bodies are raw SVG markup; responses
// are JSON envelopes carrying the pipeline results. The server shares the
// Runner (and its cache) across requests.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/pipeline"
	"github.com/desenhapp/svgprep/pkg/validate"
)

// maxBodyBytes caps request bodies. Coloring drawings are small; anything
// this large is not one.
const maxBodyBytes = 10 << 20

// Server handles HTTP requests against the pipeline.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around an existing runner. The runner's cache
// is shared by all requests.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the chi router with all routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/adapt", s.handleAdapt)
		r.Post("/validate", s.handleValidate)
		r.Post("/fix", s.handleFix)
	})
	return r
}

// adaptResponse is the envelope for POST /v1/adapt.
type adaptResponse struct {
	SVG      string                `json:"svg"`
	Result   *pipeline.AdaptResult `json:"result"`
	CacheHit bool                  `json:"cache_hit"`
}

// validateResponse is the envelope for POST /v1/validate.
type validateResponse struct {
	Result   *validate.Result `json:"result"`
	CacheHit bool             `json:"cache_hit"`
}

// fixResponse is the envelope for POST /v1/fix.
type fixResponse struct {
	SVG    string                 `json:"svg"`
	Result *validate.RepairResult `json:"result"`
}

// errorResponse is the envelope for failures.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// adaptOptions reads pipeline options from query parameters.
func adaptOptions(r *http.Request) pipeline.Options {
	opts := pipeline.Options{}
	q := r.URL.Query()
	if q.Get("refresh") == "true" {
		opts.Refresh = true
	}
	if q.Get("skip_validate") == "true" {
		opts.SkipValidate = true
	}
	return opts
}

func (s *Server) handleAdapt(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}

	adapted, result, cacheHit, err := s.runner.AdaptBytes(r.Context(), raw, adaptOptions(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, adaptResponse{
		SVG:      string(adapted),
		Result:   result,
		CacheHit: cacheHit,
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}

	res, cacheHit, err := s.runner.ValidateBytes(r.Context(), raw, adaptOptions(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, validateResponse{Result: res, CacheHit: cacheHit})
}

func (s *Server) handleFix(w http.ResponseWriter, r *http.Request) {
	raw, ok := s.readBody(w, r)
	if !ok {
		return
	}

	fixed, res, err := s.runner.FixBytes(r.Context(), raw)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fixResponse{SVG: string(fixed), Result: res})
}

// readBody reads the raw SVG body, rejecting empty and oversized requests.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "request body too large"})
		return nil, false
	}
	if len(raw) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "empty request body",
			Code:  string(errors.ErrCodeInvalidInput),
		})
		return nil, false
	}
	return raw, true
}

// writeError maps pipeline errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidSVG, errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	s.logger.Error("request failed", "code", code, "error", err)
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: string(code)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
