package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lazypath/search"
)

// Namespace prefixes every metric name.
const Namespace = "lazypath"

// Metrics records one set of Prometheus observations per finished search.
//
// Metrics exposed (all namespaced with "lazypath_"):
//
//  1. searches_total (counter): finished searches. Labels: mode, outcome.
//  2. expansions_total (counter): nodes settled and expanded. Labels: mode.
//  3. discarded_total (counter): stale frontier entries dropped. Labels: mode.
//  4. frontier_peak (histogram): largest frontier length per search. Labels: mode.
//  5. search_duration_seconds (histogram): wall time per search. Labels: mode.
type Metrics struct {
	searches   *prometheus.CounterVec
	expansions *prometheus.CounterVec
	discarded  *prometheus.CounterVec
	frontier   *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
}

// NewMetrics creates and registers the search collectors with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
//
// Registering twice with the same registry panics, as with any promauto collector.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Finished searches by mode and outcome",
		}, []string{"mode", "outcome"}),
		expansions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "expansions_total",
			Help:      "Nodes settled and expanded",
		}, []string{"mode"}),
		discarded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "discarded_total",
			Help:      "Stale or duplicate frontier entries popped and dropped",
		}, []string{"mode"}),
		frontier: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "frontier_peak",
			Help:      "Largest frontier length reached during one search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~262k entries
		}, []string{"mode"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall time of one search from seeding to termination",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 12), // 10µs to ~42s
		}, []string{"mode"}),
	}
}

// ObserveSearch implements search.Observer.
func (m *Metrics) ObserveSearch(r search.Report) {
	mode := r.Mode.String()
	m.searches.WithLabelValues(mode, r.Outcome.String()).Inc()
	m.expansions.WithLabelValues(mode).Add(float64(r.Expanded))
	m.discarded.WithLabelValues(mode).Add(float64(r.Discarded))
	m.frontier.WithLabelValues(mode).Observe(float64(r.PeakFrontier))
	m.duration.WithLabelValues(mode).Observe(r.Elapsed.Seconds())
}
