package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/festy23/league_admission/internal/apperror"
)

// Errors renders the last error recorded by a handler as a problem document.
// It is the only place failures are classified.
func Errors(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		writeProblem(c, logger, c.Errors.Last().Err)
	}
}

// NotFound records ErrRouteNotFound so Errors answers unmatched routes with
// a problem document.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.ErrRouteNotFound.With("method", c.Request.Method))
	}
}

func writeProblem(c *gin.Context, logger *zap.SugaredLogger, err error) {
	classified := apperror.Classify(err)
	problem := apperror.NewProblem(classified, err, c.Request.URL.Path)
	problem.RequestID = GetRequestID(c)
	c.Set(problemCodeKey, problem.Code)

	logger.Logw(classified.Level, "request failed",
		"status", problem.Status,
		"code", problem.Code,
		"method", c.Request.Method,
		"path", problem.Instance,
		"request_id", problem.RequestID,
		"error", err,
	)

	c.Header("Content-Type", apperror.ProblemContentType)
	c.AbortWithStatusJSON(problem.Status, problem)
}
