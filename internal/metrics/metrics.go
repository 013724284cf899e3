package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopmeco_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	OrdersCancelledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopmeco_orders_cancelled_total",
		Help: "Total number of orders cancelled.",
	})

	ServiceRequestsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopmeco_service_requests_completed_total",
		Help: "Total number of service requests completed.",
	})

	ReviewsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shopmeco_reviews_created_total",
		Help: "Total number of reviews successfully created.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shopmeco_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	ProductCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "shopmeco_product_cache_items",
		Help: "Current number of items in the product cache.",
	})
)
