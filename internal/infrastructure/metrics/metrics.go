// Package metrics expone los contadores Prometheus de las operaciones del
// núcleo. Se publican en /metrics desde el servidor HTTP.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SalesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_sales_completed_total",
		Help: "Ventas completadas",
	})

	SalesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_sales_failed_total",
		Help: "Ventas rechazadas, por motivo",
	}, []string{"reason"})

	CancellationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_cancellations_total",
		Help: "Transacciones canceladas con reversa de stock",
	})

	VoidedLinesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_voided_lines_total",
		Help: "Anulaciones parciales de líneas",
	})

	TransfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_stock_transfers_total",
		Help: "Traslados internos de stock completados",
	})

	WholesaleOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_wholesale_orders_total",
		Help: "Órdenes mayoristas completadas (ambas fases)",
	})

	WholesalePartialTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_wholesale_partial_total",
		Help: "Órdenes mayoristas con abono fallido (nota de conciliación)",
	})

	StockConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pos_stock_conflicts_total",
		Help: "Rechazos por stock insuficiente",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pos_http_requests_total",
		Help: "Peticiones HTTP por método, ruta y estado",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pos_http_request_duration_seconds",
		Help:    "Latencia HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
