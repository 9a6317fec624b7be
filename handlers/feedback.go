package handlers

import (
	"net/http"

	"rhea-feedback-api/services"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	predictions *services.PredictionService
	cleaner     *services.Cleaner
	feedback    *services.FeedbackService
}

func NewFeedbackHandler(predictions *services.PredictionService, cleaner *services.Cleaner, feedback *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{predictions: predictions, cleaner: cleaner, feedback: feedback}
}

// GridRow is the feedback grid's projection of a cleaned record. Only the
// last two columns are writable; everything else is context for the
// agronomist reviewing the recommendation.
type GridRow struct {
	ID                 int64   `json:"id"`
	Date               string  `json:"date"`
	Nitrogen           float64 `json:"nitrogen"`
	Phosphorus         float64 `json:"phosphorus"`
	Potassium          float64 `json:"potassium"`
	Temperature        float64 `json:"temperature"`
	Humidity           float64 `json:"humidity"`
	Rainfall           float64 `json:"rainfall"`
	Location           string  `json:"location"`
	RecommendedCrop    string  `json:"recommended_crop"`
	FarmerSelectedCrop string  `json:"farmer_selected_crop"`
	FeedbackMessage    string  `json:"feedback_message"`
}

type ColumnLabel struct {
	Field string `json:"field"`
	Label string `json:"label"`
}

// gridColumns ships the human-readable headers with the payload so the grid
// renders them without hardcoding.
var gridColumns = []ColumnLabel{
	{Field: "id", Label: "ID"},
	{Field: "date", Label: "Date"},
	{Field: "nitrogen", Label: "Nitrogen"},
	{Field: "phosphorus", Label: "Phosphorus"},
	{Field: "potassium", Label: "Potassium"},
	{Field: "temperature", Label: "Temperature (°C)"},
	{Field: "humidity", Label: "Humidity (%)"},
	{Field: "rainfall", Label: "Rainfall (mm)"},
	{Field: "location", Label: "Location"},
	{Field: "recommended_crop", Label: "Recommended Crop"},
	{Field: "farmer_selected_crop", Label: "Farmer Selected Crop"},
	{Field: "feedback_message", Label: "Feedback Message"},
}

type GridResponse struct {
	Columns []ColumnLabel `json:"columns"`
	Rows    []GridRow     `json:"rows"`
	Warning string        `json:"warning,omitempty"`
}

func (h *FeedbackHandler) GetGrid(c *gin.Context) {
	raw, warning := h.predictions.FetchAll(c.Request.Context())

	cleaned, err := h.cleaner.Clean(raw)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rows := make([]GridRow, 0, len(cleaned))
	for _, rec := range cleaned {
		row := GridRow{
			ID:              rec.PredictionID,
			Date:            rec.CreatedAt,
			Nitrogen:        rec.Nitrogen,
			Phosphorus:      rec.Phosphorus,
			Potassium:       rec.Potassium,
			Temperature:     rec.Temperature,
			Humidity:        rec.Humidity,
			Rainfall:        rec.Rainfall,
			Location:        rec.Location,
			RecommendedCrop: rec.Crop,
		}
		if rec.UserSelectedCrop != nil {
			row.FarmerSelectedCrop = *rec.UserSelectedCrop
		}
		if rec.FeedbackMessage != nil {
			row.FeedbackMessage = *rec.FeedbackMessage
		}
		rows = append(rows, row)
	}

	c.JSON(http.StatusOK, GridResponse{Columns: gridColumns, Rows: rows, Warning: warning})
}

type SubmitRequest struct {
	Rows []services.FeedbackEdit `json:"rows" binding:"required"`
}

type SubmitResponse struct {
	Results []services.RowResult `json:"results"`
}

// Submit applies a batch of grid edits. The response is 200 even when rows
// fail: per-row outcomes are data for the operator, not transport errors.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := h.feedback.Submit(c.Request.Context(), req.Rows)

	c.JSON(http.StatusOK, SubmitResponse{Results: results})
}
