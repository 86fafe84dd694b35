package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adventistcho-art/ESG-Archive/pkg/metrics"
)

// Metrics HTTP 请求指标中间件
// path 取路由模板（如 /api/projects/:id），未命中路由时记为 unmatched，避免标签基数膨胀
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
