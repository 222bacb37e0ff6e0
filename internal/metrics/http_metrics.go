package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func init() {
	prometheus.MustRegister(requestCounter, requestDuration)
}

// Middleware records request counts and latencies by route.
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
			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}
			labels := []string{c.Request().Method, path, strconv.Itoa(status)}
			requestCounter.WithLabelValues(labels...).Inc()
			requestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the Prometheus scrape endpoint.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
