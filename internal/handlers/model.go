package handlers

import (
	"net/http"

	"github.com/pitchside/predictor-api/internal/models"
)

// GetModelInfo returns the factor list and full parameter set of the served model
// @Summary Get Model Info
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.ModelInfo
// @Router /model [get]
func (h *Handler) GetModelInfo(w http.ResponseWriter, r *http.Request) {
	info := models.ModelInfo{
		Name:        "weighted-differential",
		Version:     models.ModelVersion,
		Factors:     models.FactorNames(),
		ModelParams: h.predictor.Params(),
	}

	h.jsonResponse(w, http.StatusOK, info)
}
