// Package metrics provides Prometheus instrumentation for the assessment
// backend: login outcomes, questionnaire submissions, and calls to the
// external analysis service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// LoginsTotal counts login attempts, labeled by result: "success" or "failure".
	LoginsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecogauge_logins_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	// SubmissionsTotal counts accepted questionnaire submissions.
	SubmissionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ecogauge_submissions_total",
		Help: "Total number of accepted questionnaire submissions",
	})

	// AnalysisRequestsTotal counts calls to the external analysis service,
	// labeled by status: "success" or "failure".
	AnalysisRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ecogauge_analysis_requests_total",
		Help: "Total number of analysis service calls",
	}, []string{"status"})

	// AnalysisLatency records analysis service call latency in seconds.
	AnalysisLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ecogauge_analysis_latency_seconds",
		Help:    "Analysis service call latency in seconds",
		Buckets: []float64{.5, 1, 2, 5, 10, 30, 60, 120},
	})
)

func init() {
	prometheus.MustRegister(
		LoginsTotal,
		SubmissionsTotal,
		AnalysisRequestsTotal,
		AnalysisLatency,
	)
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
