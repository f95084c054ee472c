package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/league_admission/internal/auth"
)

// problemCodeKey carries the classified error code from Errors to Logger.
const problemCodeKey = "middleware.problem_code"

// Logger returns a middleware that writes one access line per request.
// Requests that ended in a problem document also carry its code.
func Logger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		fields := accessFields(c, time.Since(start))

		switch {
		case status >= 500:
			logger.Errorw("HTTP request", fields...)
		case status >= 400:
			logger.Warnw("HTTP request", fields...)
		default:
			logger.Infow("HTTP request", fields...)
		}
	}
}

func accessFields(c *gin.Context, latency time.Duration) []interface{} {
	fields := []interface{}{
		"status", c.Writer.Status(),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"route", c.FullPath(),
		"latency_ms", latency.Milliseconds(),
		"client_ip", c.ClientIP(),
		"user_agent", c.Request.UserAgent(),
		"request_id", GetRequestID(c),
	}

	if raw := c.Request.URL.RawQuery; raw != "" {
		fields = append(fields, "query", raw)
	}
	if size := c.Writer.Size(); size > 0 {
		fields = append(fields, "size", size)
	}
	if userID, err := auth.UserID(c); err == nil {
		fields = append(fields, "user_id", userID)
	}
	if code := c.GetString(problemCodeKey); code != "" {
		fields = append(fields, "problem_code", code)
	}

	return fields
}
