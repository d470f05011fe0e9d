package metrics

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the process-local Prometheus registry and collectors.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

func New() *Metrics {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "babyfood",
			Name:      "http_requests_total",
			Help:      "Number of HTTP requests by method, route and status.",
		},
		[]string{"method", "path", "status"},
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(requests)

	return &Metrics{registry: registry, requests: requests}
}

// Middleware counts every request against its registered route pattern.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}
			m.requests.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()
			return err
		}
	}
}

// Handler serves the exposition endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
