package server

import (
	"net/http"
	"time"

	"github.com/jonathan/wellness-engine/internal/health"
	"github.com/jonathan/wellness-engine/internal/server/middleware"
	"github.com/jonathan/wellness-engine/internal/types"
)

type healthCheckResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

type predictResponse struct {
	Success    bool                    `json:"success"`
	Prediction *types.HealthPrediction `json:"prediction"`
	Timestamp  string                  `json:"timestamp"`
}

type nutritionResponse struct {
	Success         bool                            `json:"success"`
	Recommendations *types.NutritionRecommendations `json:"recommendations"`
	Timestamp       string                          `json:"timestamp"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

// handleHealthCheck reports service liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, healthCheckResponse{
		Status:    "OK",
		Service:   ServiceName,
		Timestamp: s.timestamp(),
	})
}

// handlePredict scores the posted metrics and profile.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req types.PredictRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	prediction, err := health.Predict(req.Metrics, req.UserProfile)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, predictResponse{
		Success:    true,
		Prediction: prediction,
		Timestamp:  s.timestamp(),
	})
}

// handleNutrition builds a nutrition plan for the posted profile.
func (s *Server) handleNutrition(w http.ResponseWriter, r *http.Request) {
	var req types.NutritionRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	recs, err := s.engine.GenerateAt(req, s.now())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, nutritionResponse{
		Success:         true,
		Recommendations: recs,
		Timestamp:       s.timestamp(),
	})
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := types.DecodeJSON(r.Body, v); err != nil {
		if types.IsInvalidInput(err) {
			return err
		}
		return &ErrMalformedBody{Cause: err}
	}
	return nil
}

// handleError logs err and writes the error envelope with its mapped status.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	kv := []interface{}{
		"request_id", middleware.GetRequestID(r.Context()),
		"path", r.URL.Path,
		"status", status,
		"error", err.Error(),
	}
	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", kv...)
	} else {
		s.log.Warn("request rejected", kv...)
	}
	s.errorResponse(w, status, err.Error())
}
