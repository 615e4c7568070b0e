package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors for quiz and report activity.
type Metrics struct {
	submissions prometheus.Counter
	archetypes  *prometheus.CounterVec
	reportViews *prometheus.CounterVec
	gatherer    prometheus.Gatherer
}

// Report kinds used as the "kind" label.
const (
	KindFree    = "free"
	KindPremium = "premium"
)

var (
	defaultOnce sync.Once
	shared      *Metrics
)

// Default returns the instance registered with the global registry. It is
// built once so repeated calls do not panic on duplicate registration.
func Default() *Metrics {
	defaultOnce.Do(func() {
		shared = MustNew(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
	})
	return shared
}

// MustNew registers the collectors with reg and panics on a registration
// error. Tests pass a fresh prometheus.NewRegistry() for both arguments.
func MustNew(reg prometheus.Registerer, g prometheus.Gatherer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if g == nil {
		g = prometheus.DefaultGatherer
	}
	m := &Metrics{
		submissions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "talentai",
			Name:      "quiz_submissions_total",
			Help:      "Number of quiz submissions scored and stored.",
		}),
		archetypes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentai",
			Name:      "archetype_assigned_total",
			Help:      "Number of profiles assigned each archetype.",
		}, []string{"archetype"}),
		reportViews: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "talentai",
			Name:      "report_views_total",
			Help:      "Number of reports served by kind.",
		}, []string{"kind"}),
		gatherer: g,
	}
	reg.MustRegister(m.submissions, m.archetypes, m.reportViews)
	return m
}

// ObserveSubmission counts one stored submission and its archetype.
func (m *Metrics) ObserveSubmission(archetype string) {
	if m == nil {
		return
	}
	m.submissions.Inc()
	m.archetypes.WithLabelValues(archetype).Inc()
}

// ObserveReport counts one served report of the given kind.
func (m *Metrics) ObserveReport(kind string) {
	if m == nil {
		return
	}
	m.reportViews.WithLabelValues(kind).Inc()
}

// Submissions exposes the submission counter for inspection.
func (m *Metrics) Submissions() prometheus.Counter { return m.submissions }

// Handler serves the gatherer in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
