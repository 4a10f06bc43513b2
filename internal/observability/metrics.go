package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// calculation service.
type Metrics struct {
	CalculationsTotal   prometheus.Counter
	ValidationErrors    prometheus.Counter
	DomainErrors        prometheus.Counter
	ClearanceVerdicts   *prometheus.CounterVec // label: verdict={pass,fail}
	CalculationDuration prometheus.Histogram
	ServiceUp           prometheus.Gauge

	// Result publishing metrics.
	RecordsPublished prometheus.Counter
	PublishErrors    prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		CalculationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "calculations_total",
			Help:      "Total completed sag/clearance calculations.",
		}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "validation_errors_total",
			Help:      "Total requests rejected by input validation.",
		}),
		DomainErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "domain_errors_total",
			Help:      "Total calculations aborted by a floating-point domain violation.",
		}),
		ClearanceVerdicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "clearance_verdicts_total",
			Help:      "NESC Rule 232 clearance verdicts by outcome.",
		}, []string{"verdict"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sagcalc",
			Name:      "calculation_duration_seconds",
			Help:      "Duration of one complete calculation invocation.",
			Buckets:   []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),
		ServiceUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sagcalc",
			Name:      "service_up",
			Help:      "1 while the calculation service is running.",
		}),
		RecordsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "records_published_total",
			Help:      "Total calculation records published to the results topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "sagcalc",
			Name:      "publish_errors_total",
			Help:      "Total failed attempts to publish a calculation record.",
		}),
	}

	prometheus.MustRegister(
		m.CalculationsTotal,
		m.ValidationErrors,
		m.DomainErrors,
		m.ClearanceVerdicts,
		m.CalculationDuration,
		m.ServiceUp,
		m.RecordsPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		CalculationsTotal:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sagcalc", Name: "calculations_total"}),
		ValidationErrors:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sagcalc", Name: "validation_errors_total"}),
		DomainErrors:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sagcalc", Name: "domain_errors_total"}),
		ClearanceVerdicts:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "sagcalc", Name: "clearance_verdicts_total"}, []string{"verdict"}),
		CalculationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "sagcalc", Name: "calculation_duration_seconds"}),
		ServiceUp:           prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "sagcalc", Name: "service_up"}),
		RecordsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sagcalc", Name: "records_published_total"}),
		PublishErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "sagcalc", Name: "publish_errors_total"}),
	}
}
