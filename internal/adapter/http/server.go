// Package http exposes the calculation service over HTTP: health and
// readiness probes, Prometheus metrics, and the v1 calculation API.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gridclear/sagcalc/internal/catalog"
	"github.com/gridclear/sagcalc/internal/engine"
	"github.com/gridclear/sagcalc/internal/service"
)

// Calculator runs calculations and reports service readiness.
type Calculator interface {
	Calculate(ctx context.Context, in engine.Input) (service.Record, error)
	CheckReadiness(ctx context.Context) error
}

// Server exposes the calculation API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	calc       Calculator
	logger     *slog.Logger
}

// NewServer creates the HTTP server with all routes registered.
func NewServer(addr string, calc Calculator, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		calc:   calc,
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/calculations", s.handleCalculate)
	mux.HandleFunc("GET /v1/constants", s.handleConstants)
	mux.HandleFunc("GET /v1/conductors", s.handleConductors)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.calc.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// calculationRequest accepts either a catalog code or a fully specified
// conductor, mirroring the scenario file format.
type calculationRequest struct {
	ConductorCode    string                    `json:"conductor_code,omitempty"`
	Conductor        *engine.ConductorSpec     `json:"conductor,omitempty"`
	Span             engine.SpanGeometry       `json:"span"`
	Environment      engine.EnvironmentalInput `json:"environment"`
	VoltageClassKV   float64                   `json:"voltage_class_kv"`
	ExposureCategory string                    `json:"exposure_category,omitempty"`
}

type errorResponse struct {
	Error  string              `json:"error"`
	Fields []engine.FieldError `json:"fields,omitempty"`
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculationRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	in, err := s.buildInput(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rec, err := s.calc.Calculate(r.Context(), in)
	if err != nil {
		s.writeCalculateError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) buildInput(req calculationRequest) (engine.Input, error) {
	in := engine.Input{
		Span:           req.Span,
		Environment:    req.Environment,
		VoltageClassKV: req.VoltageClassKV,
	}

	switch {
	case req.ConductorCode != "" && req.Conductor != nil:
		return engine.Input{}, errors.New("specify conductor_code or conductor, not both")
	case req.ConductorCode != "":
		entry, err := catalog.Lookup(req.ConductorCode)
		if err != nil {
			return engine.Input{}, err
		}
		in.Conductor = entry.Spec
	case req.Conductor != nil:
		in.Conductor = *req.Conductor
	default:
		return engine.Input{}, errors.New("conductor_code or conductor is required")
	}

	if req.ExposureCategory != "" {
		exp, err := engine.Exposure(req.ExposureCategory)
		if err != nil {
			return engine.Input{}, err
		}
		in.Exposure = &exp
	}

	return in, nil
}

func (s *Server) writeCalculateError(w http.ResponseWriter, err error) {
	var valErr *engine.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "invalid input",
			Fields: valErr.Fields,
		})
		return
	}

	var domainErr *engine.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: domainErr.Error()})
		return
	}

	s.logger.Error("calculation handler failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

type exposureInfo struct {
	Category  string                   `json:"category"`
	Constants engine.ExposureConstants `json:"constants"`
}

type constantsResponse struct {
	InitialTensionFactor float64        `json:"initial_tension_factor"`
	FinalTensionFactor   float64        `json:"final_tension_factor"`
	DesignTensionFactor  float64        `json:"design_tension_factor"`
	Exposures            []exposureInfo `json:"exposures"`
}

func (s *Server) handleConstants(w http.ResponseWriter, _ *http.Request) {
	resp := constantsResponse{
		InitialTensionFactor: engine.InitialTensionFactor,
		FinalTensionFactor:   engine.FinalTensionFactor,
		DesignTensionFactor:  engine.DesignTensionFactor,
	}
	for _, category := range engine.ExposureCategories() {
		exp, err := engine.Exposure(category)
		if err != nil {
			continue
		}
		resp.Exposures = append(resp.Exposures, exposureInfo{Category: category, Constants: exp})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleConductors(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Entries())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
