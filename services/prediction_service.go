package services

import (
	"context"
	"log"
	"time"

	"rhea-feedback-api/models"

	"gorm.io/gorm"
)

const predictionsCacheKey = "predictions:all"

// PredictionService reads the crop_predictions table. The whole table is
// fetched at once (it is small and every view needs all of it) and cached
// for the configured freshness window so repeated interactions within a
// session do not hit the store again.
type PredictionService struct {
	db    *gorm.DB
	cache *CacheService
	ttl   time.Duration
}

func NewPredictionService(db *gorm.DB, cache *CacheService, ttl time.Duration) *PredictionService {
	return &PredictionService{db: db, cache: cache, ttl: ttl}
}

// FetchAll returns the current contents of the prediction table. It never
// returns an error: a store failure or an empty table degrades to an empty
// slice with a warning for the operator, so views render instead of crashing.
func (s *PredictionService) FetchAll(ctx context.Context) ([]models.PredictionRecord, string) {
	var cached []models.PredictionRecord
	if err := s.cache.Get(ctx, predictionsCacheKey, &cached); err == nil && cached != nil {
		fetchCacheHits.Inc()
		return cached, ""
	}

	fetchTotal.Inc()
	var rows []models.PredictionRecord
	if err := s.db.WithContext(ctx).Order(`"Prediction_ID"`).Find(&rows).Error; err != nil {
		fetchFailures.Inc()
		log.Printf("prediction fetch failed: %v", err)
		return []models.PredictionRecord{}, "prediction store unavailable, showing no records"
	}

	if len(rows) == 0 {
		return rows, "no prediction records available"
	}

	go s.cache.Set(context.Background(), predictionsCacheKey, rows, s.ttl)

	return rows, ""
}
