package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects the counters shared by the RedDog services. Each service
// registers only the subset it touches; unused collectors report zero.
type Registry struct {
	reg *prometheus.Registry

	OrdersPublished     prometheus.Counter
	OrdersQueued        prometheus.Counter
	OrdersCompleted     prometheus.Counter
	WriteConflicts      *prometheus.CounterVec
	PublishFailures     prometheus.Counter
	PointsEarned        prometheus.Counter
	WorkerPasses        prometheus.Counter
	WorkerPassesSkipped prometheus.Counter
	ReceiptsWritten     prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	ordersPublished := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_orders_published_total"})
	ordersQueued := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_makeline_orders_queued_total"})
	ordersCompleted := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_makeline_orders_completed_total"})
	writeConflicts := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "reddog_state_write_conflicts_total"}, []string{"engine"})
	publishFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_publish_failures_total"})
	pointsEarned := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_loyalty_points_earned_total"})
	workerPasses := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_worker_passes_total"})
	workerPassesSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_worker_passes_skipped_total"})
	receiptsWritten := prometheus.NewCounter(prometheus.CounterOpts{Name: "reddog_receipts_written_total"})

	r.MustRegister(ordersPublished, ordersQueued, ordersCompleted, writeConflicts,
		publishFailures, pointsEarned, workerPasses, workerPassesSkipped, receiptsWritten)

	return &Registry{
		reg:                 r,
		OrdersPublished:     ordersPublished,
		OrdersQueued:        ordersQueued,
		OrdersCompleted:     ordersCompleted,
		WriteConflicts:      writeConflicts,
		PublishFailures:     publishFailures,
		PointsEarned:        pointsEarned,
		WorkerPasses:        workerPasses,
		WorkerPassesSkipped: workerPassesSkipped,
		ReceiptsWritten:     receiptsWritten,
	}
}

func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
