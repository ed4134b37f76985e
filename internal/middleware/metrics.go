package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"event-management-api/internal/monitoring"
)

func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		// FullPath is the route template, so cardinality stays bounded
		monitoring.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
