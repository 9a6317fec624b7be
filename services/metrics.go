package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rhea_api_prediction_fetches_total",
		Help: "Total number of prediction-table fetches issued to the store.",
	})
	fetchCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rhea_api_prediction_cache_hits_total",
		Help: "Total number of prediction fetches served from the cache.",
	})
	fetchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rhea_api_prediction_fetch_failures_total",
		Help: "Total number of prediction fetches that failed at the store.",
	})
	feedbackUpdated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rhea_api_feedback_updates_total",
		Help: "Total number of feedback rows successfully written back.",
	})
	feedbackFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rhea_api_feedback_failures_total",
		Help: "Total number of feedback rows rejected or failed to write.",
	})
)
