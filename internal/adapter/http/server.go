package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/frostline/thermoscale-etl/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes health, readiness, metrics, and temperature query endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /healthz, /readyz, /metrics, and the
// /v1 temperature routes.
func NewServer(addr string, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger: logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/convert", s.handleConvert)
	mux.HandleFunc("GET /v1/classify", s.handleClassify)

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

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// convertResponse is the payload for GET /v1/convert.
type convertResponse struct {
	Value      float64  `json:"value"`
	Unit       string   `json:"unit"`
	Display    string   `json:"display"`
	Celsius    float64  `json:"celsius"`
	Fahrenheit float64  `json:"fahrenheit"`
	Kelvin     float64  `json:"kelvin"`
	To         string   `json:"to,omitempty"`
	Converted  *float64 `json:"converted,omitempty"`
}

// handleConvert answers GET /v1/convert?value=21.5&unit=c[&to=f]. All three
// scales are always included; "to" additionally names one of them.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	temp, ok := parseTemperatureQuery(w, r)
	if !ok {
		return
	}

	resp := convertResponse{
		Value:      temp.Amount(),
		Unit:       temp.Unit().String(),
		Display:    temp.String(),
		Celsius:    temp.In(domain.Celsius),
		Fahrenheit: temp.In(domain.Fahrenheit),
		Kelvin:     temp.In(domain.Kelvin),
	}

	if to := r.URL.Query().Get("to"); to != "" {
		target, err := domain.ParseUnit(to)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		converted := temp.In(target)
		resp.To = target.String()
		resp.Converted = &converted
	}

	writeJSON(w, http.StatusOK, resp)
}

// classifyResponse is the payload for GET /v1/classify.
type classifyResponse struct {
	Value         float64              `json:"value"`
	Unit          string               `json:"unit"`
	Display       string               `json:"display"`
	Concept       string               `json:"concept,omitempty"`
	ConceptLabel  string               `json:"concept_label,omitempty"`
	ConceptRange  *domain.ConceptRange `json:"concept_range,omitempty"`
	Waypoint      string               `json:"waypoint,omitempty"`
	WaypointLabel string               `json:"waypoint_label,omitempty"`
	GaugePosition *float64             `json:"gauge_position,omitempty"`
}

// handleClassify answers GET /v1/classify?value=21.5&unit=c. Kelvin values are
// accepted but classify to no concept, mirroring pipeline behavior.
func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	temp, ok := parseTemperatureQuery(w, r)
	if !ok {
		return
	}

	resp := classifyResponse{
		Value:   temp.Amount(),
		Unit:    temp.Unit().String(),
		Display: temp.String(),
	}

	if concept := domain.Classify(temp); concept != domain.ConceptNone {
		resp.Concept = concept.String()
		resp.ConceptLabel = concept.Describe()
		if bounds, err := concept.Bounds(temp.Unit()); err == nil {
			resp.ConceptRange = &bounds
		}
	}

	if wp := domain.IdentifyWaypoint(temp); wp != domain.WaypointNone {
		resp.Waypoint = wp.String()
		resp.WaypointLabel = wp.Label()
	}

	if sys, ok := temp.Unit().System(); ok {
		pos := domain.DisplayGauge(sys).Position(temp)
		resp.GaugePosition = &pos
	}

	writeJSON(w, http.StatusOK, resp)
}

// parseTemperatureQuery reads the value and unit query params shared by the
// /v1 endpoints. On failure it writes a 400 and returns ok=false.
func parseTemperatureQuery(w http.ResponseWriter, r *http.Request) (domain.Temperature, bool) {
	q := r.URL.Query()

	valueStr := q.Get("value")
	if valueStr == "" {
		writeError(w, http.StatusBadRequest, "missing required query param: value")
		return domain.Temperature{}, false
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid value: "+valueStr)
		return domain.Temperature{}, false
	}

	unitStr := q.Get("unit")
	if unitStr == "" {
		writeError(w, http.StatusBadRequest, "missing required query param: unit")
		return domain.Temperature{}, false
	}
	unit, err := domain.ParseUnit(unitStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return domain.Temperature{}, false
	}

	return domain.NewTemperature(value, unit), true
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
