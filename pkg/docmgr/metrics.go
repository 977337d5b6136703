package docmgr

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/coolbeans/ontograph/pkg/errors"
)

// Metrics holds Prometheus counters for document handling. A nil
// *Metrics records nothing.
type Metrics struct {
	DocumentsFetched prometheus.Counter
	CacheHits        prometheus.Counter
	ImportFailures   prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		DocumentsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "documents_fetched_total",
			Help:      "Total ontology documents fetched and parsed",
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "document_cache_hits_total",
			Help:      "Total imports served from the parsed document cache",
		}),
		ImportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ontograph",
			Name:      "import_failures_total",
			Help:      "Total imports that could not be read",
		}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.DocumentsFetched, m.CacheHits, m.ImportFailures} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "failed to register document metrics")
		}
	}
	return m, nil
}

func (m *Metrics) fetched() {
	if m != nil {
		m.DocumentsFetched.Inc()
	}
}

func (m *Metrics) cacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

func (m *Metrics) importFailed() {
	if m != nil {
		m.ImportFailures.Inc()
	}
}
