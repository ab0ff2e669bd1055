package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"busexcursion/internal/metrics"
)

// Logger prints one access line per request and counts it in m (m may be nil).
func Logger(m *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		reqID := GetRequestID(c)
		status := c.Writer.Status()
		m.ObserveRequest(c.Request.Method, status)

		log.Printf("[HTTP] request_id=%s method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			reqID,
			c.Request.Method,
			c.Request.URL.Path,
			status,
			float64(latency.Microseconds())/1000.0,
			c.ClientIP(),
		)
	}
}
