// Package api - Thin HTTP layer over the pricing core
// The API is only responsible for input ingestion, core orchestration, and
// output serialization. It never performs pricing logic, and malformed
// pricing input is never a server error: the core's degrade-to-zero
// contract extends through normalization, so only an unreadable body
// produces a 4xx.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"quote-pricing/core/engine"
	"quote-pricing/core/format"
	"quote-pricing/core/policy"
	"quote-pricing/internal/logging"
	"quote-pricing/internal/metrics"
)

// Server is the API server
type Server struct {
	router  chi.Router
	version string
	log     *zap.Logger
}

// NewServer creates a new API server
func NewServer(version string) *Server {
	s := &Server{
		version: version,
		log:     logging.With(zap.String("component", "api")),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/v1/estimate", s.handleEstimate)
	r.Post("/v1/display", s.handleDisplay)
	r.Get("/health", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Handle("/metrics", promhttp.Handler())

	s.router = r
	return s
}

// handleEstimate handles POST /v1/estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	normalized := policy.Normalize(req.Policy)
	est := engine.Compute(normalized, req.Config, req.Components)
	display := format.Format(normalized, &est.EstimateLow, &est.EstimateHigh)

	model := string(normalized.Model)
	if reason, suppressed := engine.SuppressionReason(normalized); suppressed {
		metrics.EstimatesSuppressed.WithLabelValues(reason, model).Inc()
	} else {
		metrics.EstimatesComputed.WithLabelValues(model).Inc()
	}
	metrics.RequestDuration.WithLabelValues("estimate").Observe(time.Since(start).Seconds())

	s.log.Info("estimate computed",
		zap.String("request_id", requestID),
		zap.String("model", model),
		zap.Int64("estimate_low", est.EstimateLow),
		zap.Int64("estimate_high", est.EstimateHigh),
	)

	s.writeJSON(w, &EstimateResponse{
		RequestID:  requestID,
		Estimate:   est,
		Display:    display,
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleDisplay handles POST /v1/display
func (s *Server) handleDisplay(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req DisplayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, requestID, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	normalized := policy.Normalize(req.Policy)
	display := format.Format(normalized, req.EstimateLow, req.EstimateHigh)
	metrics.RequestDuration.WithLabelValues("display").Observe(time.Since(start).Seconds())

	s.writeJSON(w, &DisplayResponse{
		RequestID: requestID,
		Display:   display,
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "quote-pricing",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, requestID, code, message string, status int) {
	s.log.Warn("request rejected",
		zap.String("request_id", requestID),
		zap.String("code", code),
	)
	s.writeJSON(w, &ErrorResponse{
		Error: ErrorDetail{
			Code:      code,
			Message:   message,
			RequestID: requestID,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func generateRequestID() string {
	return uuid.NewString()
}
