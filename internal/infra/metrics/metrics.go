package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Execution unit counters and histograms, partitioned by operation.

var (
	UnitsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asset_factory",
		Subsystem: "executor",
		Name:      "units_total",
		Help:      "Total execution units by outcome",
	}, []string{"op", "outcome"})

	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asset_factory",
		Subsystem: "executor",
		Name:      "rejections_total",
		Help:      "Total execution units rejected with a program error code",
	}, []string{"op", "code"})

	UnitLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "asset_factory",
		Subsystem: "executor",
		Name:      "unit_duration_seconds",
		Help:      "Execution unit duration including sequencer wait",
		Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"op"})

	SettlementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asset_factory",
		Subsystem: "settlement",
		Name:      "settled_total",
		Help:      "Total reservations settled by purchase path",
	}, []string{"path"})

	LamportsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "asset_factory",
		Subsystem: "settlement",
		Name:      "lamports_total",
		Help:      "Lamports moved by settlement leg",
	}, []string{"leg"})
)

// Recorder is the executor's view of the metrics above.
type Recorder struct{}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (Recorder) ObserveUnit(op, outcome, code string, elapsed time.Duration) {
	UnitsTotal.WithLabelValues(op, outcome).Inc()
	if code != "" {
		RejectionsTotal.WithLabelValues(op, code).Inc()
	}
	UnitLatency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (Recorder) ObserveSettlement(path string, ownerNet, protocolFee uint64) {
	SettlementsTotal.WithLabelValues(path).Inc()
	LamportsMoved.WithLabelValues("owner").Add(float64(ownerNet))
	LamportsMoved.WithLabelValues("protocol").Add(float64(protocolFee))
}
