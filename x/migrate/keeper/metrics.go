package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MigrateMetrics holds all Prometheus metrics for the migrate module
type MigrateMetrics struct {
	MigrationsTotal   *prometheus.CounterVec
	ClaimsTotal       *prometheus.CounterVec
	FulfillmentsTotal prometheus.Counter
	RejectedTotal     *prometheus.CounterVec
}

var (
	migrateMetricsOnce sync.Once
	migrateMetrics     *MigrateMetrics
)

// GetMigrateMetrics returns the singleton metrics instance
func GetMigrateMetrics() *MigrateMetrics {
	migrateMetricsOnce.Do(func() {
		migrateMetrics = &MigrateMetrics{
			MigrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "migrate",
				Name:      "migrations_total",
				Help:      "Total number of positions opened, by denom",
			}, []string{"denom"}),
			ClaimsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "migrate",
				Name:      "claims_total",
				Help:      "Total number of positions claimed, by denom",
			}, []string{"denom"}),
			FulfillmentsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "migrate",
				Name:      "fulfillments_total",
				Help:      "Total number of randomness fulfillments processed",
			}),
			RejectedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "migrate",
				Name:      "rejected_total",
				Help:      "Total number of rejected operations, by reason",
			}, []string{"reason"}),
		}
	})
	return migrateMetrics
}
