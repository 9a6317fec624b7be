package handlers

import (
	"net/http"

	"rhea-feedback-api/services"

	"github.com/gin-gonic/gin"
)

type SummaryHandler struct {
	predictions *services.PredictionService
	cleaner     *services.Cleaner
}

func NewSummaryHandler(predictions *services.PredictionService, cleaner *services.Cleaner) *SummaryHandler {
	return &SummaryHandler{predictions: predictions, cleaner: cleaner}
}

// GetSummary serves the landing-view payload: raw total, map points,
// per-location counts and the date/location timeline, optionally filtered
// by ?location=. A cleaning failure is fatal to the request.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	raw, warning := h.predictions.FetchAll(c.Request.Context())

	cleaned, err := h.cleaner.Clean(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summary := services.BuildSummary(raw, cleaned, c.Query("location"))
	summary.Warning = warning

	c.JSON(http.StatusOK, summary)
}
