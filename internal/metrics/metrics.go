package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being served",
		},
	)
)

// Business Metrics
var (
	TasksCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_completed_total",
			Help: "Total number of graded task completions",
		},
		[]string{"zone"},
	)

	PlantsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "plants_harvested_total",
			Help: "Total number of plants harvested",
		},
		[]string{"zone"},
	)

	AnimalsCollected = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "animal_yields_collected_total",
			Help: "Total number of animal yields collected",
		},
	)

	ProductionsStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productions_started_total",
			Help: "Total number of production chains started",
		},
		[]string{"zone"},
	)

	ProductionsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "productions_collected_total",
			Help: "Total number of production chains collected",
		},
		[]string{"zone"},
	)

	PetActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pet_care_actions_total",
			Help: "Total number of companion care actions",
		},
		[]string{"action"},
	)

	PetsRanAway = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pets_ran_away_total",
			Help: "Total number of companions that reached the abandoned state",
		},
	)
)
