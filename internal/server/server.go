package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kredcalc/india-tax-engine/internal/calculation"
	"github.com/kredcalc/india-tax-engine/internal/domain"
)

// Server exposes the tax engine over HTTP. The engine is pure, so the
// server holds no request state beyond the router.
type Server struct {
	engine *calculation.Engine
	logger *slog.Logger
	router chi.Router
}

// New builds a server around an engine. A nil logger silences request
// logging.
func New(engine *calculation.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{engine: engine, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Route("/api/v1/tax", func(r chi.Router) {
		r.Post("/calculate", s.handleCalculate)
		r.Post("/compare", s.handleCompare)
		r.Post("/validate", s.handleValidate)
		r.Get("/years", s.handleYears)
	})
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	result, err := s.engine.Calculate(input)
	if err != nil {
		s.sendEngineError(w, r, err)
		return
	}
	s.sendJSON(w, http.StatusOK, result)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	comparison, err := s.engine.CompareRegimes(input)
	if err != nil {
		s.sendEngineError(w, r, err)
		return
	}
	s.sendJSON(w, http.StatusOK, comparison)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	input, ok := s.decodeInput(w, r)
	if !ok {
		return
	}
	s.sendJSON(w, http.StatusOK, s.engine.Validate(input))
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	s.sendJSON(w, http.StatusOK, map[string][]string{"tax_years": s.engine.SupportedYears()})
}

// decodeInput parses the request body. Decode failures (including a
// boolean in a numeric field, rejected by the Rupees unmarshaler) are
// client errors.
func (s *Server) decodeInput(w http.ResponseWriter, r *http.Request) (*domain.TaxCalculationInput, bool) {
	var input domain.TaxCalculationInput
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		s.logger.Info("rejected request body", "path", r.URL.Path, "error", err)
		s.sendJSONError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &input, true
}

// sendEngineError maps engine error kinds onto HTTP statuses: input
// problems are 400, an unregistered tax year is 404, anything else 500.
func (s *Server) sendEngineError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrMissingConfiguration):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInputKind),
		errors.Is(err, domain.ErrOutOfRange),
		errors.Is(err, domain.ErrUnknownEnumValue):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("calculation failed", "path", r.URL.Path, "error", err)
	} else {
		s.logger.Info("rejected calculation", "path", r.URL.Path, "status", status, "error", err)
	}
	s.sendJSONError(w, err.Error(), status)
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) sendJSONError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
