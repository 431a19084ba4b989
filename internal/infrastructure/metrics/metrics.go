package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts requests by method, route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gighub_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration records request latency by method and route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gighub_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// LifecycleTransitions counts successful state changes by entity and action.
	LifecycleTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gighub_lifecycle_transitions_total",
		Help: "Total number of job, proposal, payment and review transitions",
	}, []string{"entity", "action"})

	// LedgerAmount sums money moved through the earnings ledger by direction.
	LedgerAmount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gighub_ledger_amount_total",
		Help: "Total amount credited to or withdrawn from freelancer earnings",
	}, []string{"direction"})
)

func RecordTransition(entity, action string) {
	LifecycleTransitions.WithLabelValues(entity, action).Inc()
}

func RecordLedger(direction string, amount float64) {
	if amount > 0 {
		LedgerAmount.WithLabelValues(direction).Add(amount)
	}
}

// Middleware records request count and latency per registered route.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
