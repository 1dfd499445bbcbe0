package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	Validations  *prometheus.CounterVec
	UsersCreated prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "canadasin_validations_total",
			Help: "Validations performed, by number kind and outcome",
		}, []string{"kind", "outcome"}),
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "canadasin_users_created_total",
			Help: "Total number of users registered",
		}),
	}
}

func (m *Metrics) ObserveValidation(kind, outcome string) {
	if m == nil {
		return
	}
	m.Validations.WithLabelValues(kind, outcome).Inc()
}

func (m *Metrics) IncrementUsersCreated() {
	if m == nil {
		return
	}
	m.UsersCreated.Inc()
}
