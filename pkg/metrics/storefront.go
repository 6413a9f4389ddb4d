package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the checkout HTTP handler
	CheckoutLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "checkout_latency_seconds",
		Help:    "Latency of the checkout handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of orders created through checkout
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Total number of orders created",
	})

	// Cart mutations by operation (add, update, remove, clear)
	CartOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_operations_total",
		Help: "Total number of cart mutations by operation",
	}, []string{"operation"})
)

func Init() {
	prometheus.MustRegister(
		CheckoutLatency,
		OrdersCreated,
		CartOperations,
	)
}
