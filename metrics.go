package site

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/neuralarc/site/contact"
	"github.com/neuralarc/site/content"
)

type metrics struct {
	submissions *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, cache *content.Cache) *metrics {
	f := promauto.With(reg)
	f.NewCounterFunc(prometheus.CounterOpts{
		Name: "content_loads_total",
		Help: "Times the content set was loaded from disk",
	}, func() float64 {
		return float64(cache.Loads())
	})
	return &metrics{
		submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Contact form submissions by outcome",
		}, []string{"outcome"}),
	}
}

func (m *metrics) observeSubmission(o contact.Outcome) {
	m.submissions.WithLabelValues(string(o)).Inc()
}
