package metrics

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_requests_total",
			Help: "Total number of requests served by the mock api.",
		},
		[]string{"route", "status"},
	)
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "talentflow_request_duration_seconds",
			Help:    "Duration of mock api requests, simulated latency included.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"route"},
	)
	SimulatedFailuresCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_simulated_failures_total",
			Help: "Total number of injected request failures.",
		},
		[]string{"route"},
	)
	ReorderCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_job_reorders_total",
			Help: "Total number of job reorder attempts by outcome.",
		},
		[]string{"outcome"},
	)
	StageTransitionsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "talentflow_stage_transitions_total",
			Help: "Total number of candidate stage transitions by target stage.",
		},
		[]string{"stage"},
	)
	AssessmentScores = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "talentflow_assessment_scores",
			Help:    "Scores of submitted assessments.",
			Buckets: []float64{50, 60, 70, 80, 90, 100},
		},
	)
)

func register() {
	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(SimulatedFailuresCounter)
	prometheus.MustRegister(ReorderCounter)
	prometheus.MustRegister(StageTransitionsCounter)
	prometheus.MustRegister(AssessmentScores)
}

// StartMetricsServer registers the collectors and serves them on addr until the process exits.
func StartMetricsServer(addr string) {

	register()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()
	log.Infof("metrics server listening on %s", addr)
}
