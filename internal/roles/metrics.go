package roles

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks effective role changes per component.
type Metrics struct {
	RoleGrants  *prometheus.CounterVec
	RoleRevokes *prometheus.CounterVec
}

// NewMetrics registers the role registry metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RoleGrants: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "syndicate_role_grants_total",
			Help: "Total effective role grants, by component",
		}, []string{"component"}),
		RoleRevokes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "syndicate_role_revokes_total",
			Help: "Total effective role revokes, by component",
		}, []string{"component"}),
	}
}

// IncrementRoleChange records one effective grant or revoke.
func (m *Metrics) IncrementRoleChange(component string, granted bool) {
	if granted {
		m.RoleGrants.WithLabelValues(component).Inc()
		return
	}
	m.RoleRevokes.WithLabelValues(component).Inc()
}
