package stats

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/subtraj/query"
)

const namespace = "subtraj"

// Metrics holds the Prometheus counters exposing the query pipeline's
// per-stage survival rates.
type Metrics struct {
	DiHashTotal         prometheus.Counter
	SimplificationTotal prometheus.Counter
	EqualTimeTotal      prometheus.Counter
	CDFTotal            prometheus.Counter
	ResultsTotal        prometheus.Counter
	LearnedRatio        *prometheus.GaugeVec
}

// NewMetrics registers the stage counters against reg and returns a
// ready-to-use Metrics. Pass prometheus.NewRegistry() in tests to avoid
// colliding with the process-wide default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		DiHashTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_dihash_total",
			Help:      "Candidates surviving the spatial-hash endpoint gate.",
		}),
		SimplificationTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_simplification_total",
			Help:      "Candidates not resolved by the simplification-ladder pass.",
		}),
		EqualTimeTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_etd_total",
			Help:      "Candidates not resolved by the equal-time-distance bound, reaching the full decision-Fréchet solver.",
		}),
		CDFTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stage_cdf_total",
			Help:      "Free-space diagram rows processed by the decision-Fréchet solver.",
		}),
		ResultsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_results_total",
			Help:      "Total matches emitted across all solved queries.",
		}),
		LearnedRatio: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "learned_epsilon_ratio",
			Help:      "Mean simplification epsilon/diagonal ratio learned per ladder level during preprocessing.",
		}, []string{"level"}),
	}
}

// SetLearnedRatios publishes the per-level mean epsilon/diagonal ratios
// learned during preprocessing.
func (m *Metrics) SetLearnedRatios(means [4]float64) {
	for i, v := range means {
		m.LearnedRatio.WithLabelValues(strconv.Itoa(i)).Set(v)
	}
}

// Observe folds one query.Stats snapshot into the counters.
func (m *Metrics) Observe(s query.Stats) {
	m.DiHashTotal.Add(float64(s.DiHash))
	m.SimplificationTotal.Add(float64(s.Simplification))
	m.EqualTimeTotal.Add(float64(s.EqualTime))
	m.CDFTotal.Add(float64(s.CDFRows))
	m.ResultsTotal.Add(float64(s.Results))
}
