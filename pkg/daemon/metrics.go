package daemon

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var requestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "phased",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served, by path and status code",
	},
	[]string{
		"path",
		"status",
	},
)

var evaluationsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "phased",
		Subsystem: "model",
		Name:      "evaluations_total",
		Help:      "Successful phase-change evaluations",
	},
)

var evaluationFailures = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "phased",
		Subsystem: "model",
		Name:      "evaluation_failures_total",
		Help:      "Phase-change evaluations rejected by the calculator",
	},
)

func init() {
	prometheus.MustRegister(requestsTotal, evaluationsTotal, evaluationFailures)
}

func countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		requestsTotal.With(prometheus.Labels{
			"path":   c.FullPath(),
			"status": strconv.Itoa(c.Writer.Status()),
		}).Inc()
	}
}
