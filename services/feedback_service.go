package services

import (
	"context"
	"fmt"
	"strconv"

	"rhea-feedback-api/models"

	"gorm.io/gorm"
)

// FeedbackEdit is one row as it comes back from the editable grid. The
// identifier arrives as a string because grid cells are untyped; parsing it
// is this service's job.
type FeedbackEdit struct {
	ID                 string `json:"id"`
	FarmerSelectedCrop string `json:"farmer_selected_crop"`
	FeedbackMessage    string `json:"feedback_message"`
}

const (
	StatusUpdated = "updated"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

type RowResult struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type updateFunc func(ctx context.Context, id int64, payload map[string]interface{}) error

// FeedbackService writes operator edits back to the prediction table, one
// targeted update per row, keyed by Prediction_ID and restricted to the
// feedback fields. It never touches any other column.
type FeedbackService struct {
	update updateFunc
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{
		update: func(ctx context.Context, id int64, payload map[string]interface{}) error {
			return db.WithContext(ctx).
				Model(&models.PredictionRecord{}).
				Where(`"Prediction_ID" = ?`, id).
				Updates(payload).Error
		},
	}
}

// BuildUpdatePayload maps an edited row to the columns to patch. Only
// non-empty fields are included; a feedback message implies the record has
// received feedback, selecting a crop alone does not.
func BuildUpdatePayload(edit FeedbackEdit) map[string]interface{} {
	payload := make(map[string]interface{})
	if edit.FarmerSelectedCrop != "" {
		payload["User_Selected_Crop"] = edit.FarmerSelectedCrop
	}
	if edit.FeedbackMessage != "" {
		payload["Feedback_Message"] = edit.FeedbackMessage
		payload["Feedback_Received"] = true
	}
	return payload
}

// Submit processes a batch of edited rows. Each row succeeds or fails on its
// own: a malformed identifier or a store error is reported for that row and
// the rest of the batch proceeds.
func (s *FeedbackService) Submit(ctx context.Context, edits []FeedbackEdit) []RowResult {
	results := make([]RowResult, 0, len(edits))

	for _, edit := range edits {
		id, err := strconv.ParseInt(edit.ID, 10, 64)
		if err != nil {
			feedbackFailed.Inc()
			results = append(results, RowResult{
				ID:     edit.ID,
				Status: StatusFailed,
				Error:  fmt.Sprintf("invalid prediction id %q", edit.ID),
			})
			continue
		}

		payload := BuildUpdatePayload(edit)
		if len(payload) == 0 {
			results = append(results, RowResult{ID: edit.ID, Status: StatusSkipped})
			continue
		}

		if err := s.update(ctx, id, payload); err != nil {
			feedbackFailed.Inc()
			results = append(results, RowResult{
				ID:     edit.ID,
				Status: StatusFailed,
				Error:  fmt.Sprintf("update failed: %v", err),
			})
			continue
		}

		feedbackUpdated.Inc()
		results = append(results, RowResult{ID: edit.ID, Status: StatusUpdated})
	}

	return results
}
