// Package metrics Prometheus采集点
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "masterlist_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "masterlist_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Import pipeline metrics
	importRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "masterlist_import_rows_total",
			Help: "Total number of import rows by entity and outcome",
		},
		[]string{"entity", "outcome"},
	)
)

// Middleware 请求计数与耗时
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
	}
}

// RecordImportRows 记录一次导入的行级结果
func RecordImportRows(entity string, valid, rejected int) {
	importRowsTotal.WithLabelValues(entity, "valid").Add(float64(valid))
	importRowsTotal.WithLabelValues(entity, "rejected").Add(float64(rejected))
}
