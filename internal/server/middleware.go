package server

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Rohancherukuri/portfolio/internal/logger"
)

// RequestIDHeader carries the per-request id back to the client.
const RequestIDHeader = "X-Request-ID"

var quietPrefixes = []string{
	"/static/",
	"/images/",
	"/favicon",
	"/healthz",
}

func quiet(path string) bool {
	for _, prefix := range quietPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// requestLogger tags every request with an id and logs it once served.
// Asset and probe paths are not logged.
func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		path := c.Request.URL.Path
		if quiet(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		log.Request(id, c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
