package membership

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the membership lifecycle operations.
type Metrics struct {
	Claims        *prometheus.CounterVec
	InvestorMints *prometheus.CounterVec
	ClaimDuration prometheus.Histogram
}

// NewMetrics registers the membership metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Claims: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "syndicate_membership_claims_total",
			Help: "Total self-claim attempts, by outcome",
		}, []string{"outcome"}),
		InvestorMints: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "syndicate_membership_investor_mints_total",
			Help: "Total investor additions, by path (promoted or minted)",
		}, []string{"path"}),
		ClaimDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "syndicate_membership_claim_duration_seconds",
			Help:    "Time spent processing claim requests",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveClaim records one claim attempt.
func (m *Metrics) ObserveClaim(outcome string, elapsed time.Duration) {
	m.Claims.WithLabelValues(outcome).Inc()
	m.ClaimDuration.Observe(elapsed.Seconds())
}

// ObserveInvestorMint records one investor addition.
func (m *Metrics) ObserveInvestorMint(promoted bool) {
	path := "minted"
	if promoted {
		path = "promoted"
	}
	m.InvestorMints.WithLabelValues(path).Inc()
}
