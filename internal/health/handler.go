// Package health provides health check endpoint handler.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/database/database"
)

const checkTimeout = 5 * time.Second

// requiredTables must exist for admission requests to succeed.
var requiredTables = []string{"users", "teams", "leagues", "league_members", "league_invites"}

// Handler handles health check requests.
type Handler struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new health handler instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Response represents health check response.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Check handles GET /health request.
func (h *Handler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), checkTimeout)
	defer cancel()

	resp := Response{Status: "ok", Checks: map[string]string{"database": "ok", "schema": "ok"}}

	if err := database.HealthCheck(ctx, h.db); err != nil {
		h.logger.Warnw("health check failed", "check", "database", "error", err)
		resp.Status = "unhealthy"
		resp.Checks["database"] = "unreachable"
		resp.Checks["schema"] = "unknown"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	migrator := h.db.WithContext(ctx).Migrator()
	for _, table := range requiredTables {
		if !migrator.HasTable(table) {
			h.logger.Warnw("health check failed", "check", "schema", "missing_table", table)
			resp.Status = "unhealthy"
			resp.Checks["schema"] = "missing " + table
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
