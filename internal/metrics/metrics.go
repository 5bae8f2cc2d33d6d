package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Per-step latency of the fetch pipeline
	stepLatency *prometheus.HistogramVec
	stepErrors  *prometheus.CounterVec

	// Harvest results
	cookiesHarvested prometheus.Gauge
	tokenExpiry      *prometheus.GaugeVec

	// Run outcome
	lastRunSuccess   prometheus.Gauge
	lastRunTimestamp prometheus.Gauge
)

func init() {
	// Buckets cover keystroke-sized steps up to the 30s navigation limit
	stepLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "getjwt_step_latency_milliseconds",
			Help:    "Duration of each cookie fetch step in milliseconds",
			Buckets: []float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000},
		},
		[]string{"step", "mode"},
	)
	prometheus.MustRegister(stepLatency)

	stepErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "getjwt_step_errors_total",
			Help: "Total number of failed cookie fetch steps",
		},
		[]string{"step", "error_type"},
	)
	prometheus.MustRegister(stepErrors)

	cookiesHarvested = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "getjwt_cookies_harvested",
			Help: "Number of cookies returned by the last run",
		},
	)
	prometheus.MustRegister(cookiesHarvested)

	tokenExpiry = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "getjwt_token_expiry_timestamp_seconds",
			Help: "Expiry (unix seconds) of JWT-valued cookies seen in the last run",
		},
		[]string{"cookie"},
	)
	prometheus.MustRegister(tokenExpiry)

	lastRunSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "getjwt_last_run_success",
			Help: "1 if the last run printed cookies, 0 otherwise",
		},
	)
	prometheus.MustRegister(lastRunSuccess)

	lastRunTimestamp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "getjwt_last_run_timestamp_seconds",
			Help: "Unix time the last run finished",
		},
	)
	prometheus.MustRegister(lastRunTimestamp)
}

// RecordStepLatency records how long a pipeline step took
func RecordStepLatency(step string, mode string, latency time.Duration) {
	stepLatency.WithLabelValues(step, mode).Observe(float64(latency.Microseconds()) / 1000)
}

// RecordStepError records a failed pipeline step
func RecordStepError(step string, errorType string) {
	stepErrors.WithLabelValues(step, errorType).Inc()
}

func RecordCookiesHarvested(count int) {
	cookiesHarvested.Set(float64(count))
}

// RecordTokenExpiry records the exp claim of a JWT-valued cookie
func RecordTokenExpiry(cookie string, expiresAt time.Time) {
	tokenExpiry.WithLabelValues(cookie).Set(float64(expiresAt.Unix()))
}

// RecordRun records the outcome of a whole run
func RecordRun(success bool, finishedAt time.Time) {
	if success {
		lastRunSuccess.Set(1)
	} else {
		lastRunSuccess.Set(0)
	}
	lastRunTimestamp.Set(float64(finishedAt.Unix()))
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
