package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pitchside/predictor-api/internal/models"
)

// Prometheus metrics
var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_predictions_total",
		Help: "Total number of predictions served, by most likely outcome",
	}, []string{"outcome"})

	predictionsByConfidence = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "predictor_predictions_by_confidence_total",
		Help: "Total number of predictions served, by confidence label",
	}, []string{"confidence"})

	predictionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "predictor_prediction_duration_seconds",
		Help:    "Time spent computing a single prediction",
		Buckets: prometheus.DefBuckets,
	})

	validationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "predictor_validation_failures_total",
		Help: "Total number of prediction requests rejected by validation",
	})
)

// PredictMatch computes a win/draw/loss prediction for a single fixture
// @Summary Predict Match Outcome
// @Tags Predictions
// @Accept json
// @Produce json
// @Param request body models.MatchPredictionRequest true "Team profiles and head-to-head record"
// @Success 200 {object} models.MatchPredictionResponse
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 429 {object} map[string]string "Rate Limited"
// @Router /predictions/match [post]
func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)

	var req models.MatchPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validateStruct(&req); err != nil {
		validationFailures.Inc()
		h.logger.Warnw("Prediction request failed validation", "error", err)
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := checkFormTotals(&req); msg != "" {
		validationFailures.Inc()
		h.errorResponse(w, http.StatusBadRequest, msg)
		return
	}

	home := req.HomeTeam.Profile(true)
	away := req.AwayTeam.Profile(false)
	h2h := req.HeadToHead.Record()

	start := time.Now()
	prediction := h.predictor.Predict(home, away, h2h)
	predictionDuration.Observe(time.Since(start).Seconds())

	predictionsTotal.WithLabelValues(prediction.Outcome).Inc()
	predictionsByConfidence.WithLabelValues(prediction.Confidence).Inc()

	resp := models.MatchPredictionResponse{
		PredictionID:    uuid.NewString(),
		HomeTeam:        home.Name,
		AwayTeam:        away.Name,
		MatchPrediction: prediction,
		GeneratedAt:     time.Now().UTC(),
	}

	h.logger.Infow("Prediction served",
		"prediction_id", resp.PredictionID,
		"home", home.Name,
		"away", away.Name,
		"outcome", prediction.Outcome,
		"confidence", prediction.Confidence,
		"differential", prediction.Differential,
	)

	h.jsonResponse(w, http.StatusOK, resp)
}

// checkFormTotals rejects form records covering more than the five matches
// they are supposed to summarize. The per-field bounds are tag-validated;
// the sum needs a cross-field check.
func checkFormTotals(req *models.MatchPredictionRequest) string {
	if n := req.HomeTeam.Form.Matches(); n > 5 {
		return fmt.Sprintf("home_team.form covers %d matches, at most 5 allowed", n)
	}
	if n := req.AwayTeam.Form.Matches(); n > 5 {
		return fmt.Sprintf("away_team.form covers %d matches, at most 5 allowed", n)
	}
	return ""
}
