package metrics

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	ledgerOps    *prometheus.CounterVec
)

// Initialize registers the collectors on a private registry.
func Initialize() {
	registry = prometheus.NewRegistry()

	httpRequests = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests by method, path and status",
	}, []string{"method", "path", "status"})

	ledgerOps = promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_operations_total",
		Help: "Ledger operations by type and outcome",
	}, []string{"operation", "outcome"})
}

// Serve exposes /metrics on its own listener so the banking surface and the
// scrape endpoint never share a port.
func Serve(port string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	go func() {
		log.Printf("Metrics listening on :%s/metrics", port)
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()
}

// RequestMiddleware counts every handled request.
func RequestMiddleware(c *fiber.Ctx) error {
	err := c.Next()
	if httpRequests != nil {
		httpRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(c.Response().StatusCode())).Inc()
	}
	return err
}

// RecordLedgerOp counts a ledger operation outcome.
func RecordLedgerOp(operation string, err error) {
	if ledgerOps == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	ledgerOps.WithLabelValues(operation, outcome).Inc()
}
