package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// VaultMetrics holds all Prometheus metrics for the reward vault module
type VaultMetrics struct {
	DonationsTotal  prometheus.Counter
	SelectionsTotal prometheus.Counter
	ReleasesTotal   prometheus.Counter
	UnclaimedGauge  prometheus.Gauge
}

var (
	vaultMetricsOnce sync.Once
	vaultMetrics     *VaultMetrics
)

// GetVaultMetrics returns the singleton metrics instance
func GetVaultMetrics() *VaultMetrics {
	vaultMetricsOnce.Do(func() {
		vaultMetrics = &VaultMetrics{
			DonationsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "rewardvault",
				Name:      "donations_total",
				Help:      "Total number of collectibles donated",
			}),
			SelectionsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "rewardvault",
				Name:      "selections_total",
				Help:      "Total number of collectibles selected as rewards",
			}),
			ReleasesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "burrow",
				Subsystem: "rewardvault",
				Name:      "releases_total",
				Help:      "Total number of collectibles released to winners",
			}),
			UnclaimedGauge: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "burrow",
				Subsystem: "rewardvault",
				Name:      "unclaimed_collectibles",
				Help:      "Current number of unclaimed collectibles in the vault",
			}),
		}
	})
	return vaultMetrics
}
