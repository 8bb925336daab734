// Package metrics holds the prometheus collectors for the board: operation
// outcomes, snapshot writes and HTTP requests.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/store"
)

const namespace = "outlet_board"

// Result label values.
const (
	resultOK    = "ok"
	resultError = "error"
)

// Collectors groups every metric the server exports. Register it once with
// a prometheus.Registerer; the methods are safe for concurrent use.
type Collectors struct {
	boardOps      *prometheus.CounterVec
	snapshots     *prometheus.CounterVec
	snapshotBytes prometheus.Gauge
	revision      prometheus.Gauge
	requests      *prometheus.CounterVec
	duration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Collectors {
	c := &Collectors{
		boardOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Board operations by name and result.",
		}, []string{"op", "result"}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_writes_total",
			Help:      "Snapshot write attempts by result.",
		}, []string{"result"}),
		snapshotBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_bytes",
			Help:      "Size of the last successfully written snapshot.",
		}),
		revision: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_revision",
			Help:      "Store revision after the last successful write.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(c.boardOps, c.snapshots, c.snapshotBytes, c.revision, c.requests, c.duration)
	return c
}

// BoardOp counts one board operation. It satisfies service.OpRecorder.
func (c *Collectors) BoardOp(op string, err error) {
	c.boardOps.WithLabelValues(op, result(err)).Inc()
}

// ObserveWrite records a snapshot write. Register it with store.WithWriteObserver.
func (c *Collectors) ObserveWrite(ev store.WriteEvent) {
	c.snapshots.WithLabelValues(result(ev.Err)).Inc()
	if ev.Err == nil {
		c.snapshotBytes.Set(float64(ev.Bytes))
		c.revision.Set(float64(ev.Revision))
	}
}

// ObserveRequest records one served HTTP request. route is the matched
// pattern, not the raw path, to keep label cardinality bounded.
func (c *Collectors) ObserveRequest(method, route string, status int, seconds float64) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.duration.WithLabelValues(method, route).Observe(seconds)
}

func result(err error) string {
	if err != nil {
		return resultError
	}
	return resultOK
}
