package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "mhsbackend"
)

var (
	RosterMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "roster", "mutations_total"),
		Help: "Roster mutations processed, partitioned by action and outcome",
	}, []string{"action", "outcome"})
	ActivityOccupancy = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "activity", "occupancy"),
		Help: "Current number of participants per activity",
	}, []string{"activity"})
	ActivityCapacity = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "activity", "capacity"),
		Help: "Configured participant capacity per activity",
	}, []string{"activity"})
	WorkerCalcDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "calc_duration_seconds"),
		Help: "Duration of last worker refresh in seconds",
	}, []string{"job"})
	EventPublishDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "eventbus", "publish_duration_seconds"),
		Help:    "Duration of roster event publishes in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
	}, []string{"subject"})
)
