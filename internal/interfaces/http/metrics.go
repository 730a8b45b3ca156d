package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "duka_http_requests_total",
		Help: "HTTP requests by route, method and status.",
	}, []string{"route", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "duka_http_request_duration_seconds",
		Help:    "HTTP request latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})

	salesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duka_sales_committed_total",
		Help: "Committed sale carts.",
	})

	transfersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "duka_transfers_committed_total",
		Help: "Committed stock transfers.",
	})
)

// MetricsMiddleware records request counts and latency per route.
func MetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		route := c.Route().Path
		requestsTotal.WithLabelValues(route, c.Method(), strconv.Itoa(c.Response().StatusCode())).Inc()
		requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		return err
	}
}

// MetricsHandler exposes the Prometheus scrape endpoint.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

// CountSale bumps the committed-sales counter.
func CountSale() { salesTotal.Inc() }

// CountTransfer bumps the committed-transfers counter.
func CountTransfer() { transfersTotal.Inc() }
