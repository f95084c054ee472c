// Package router provides league module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/league/handler"
	"github.com/festy23/league_admission/internal/league/repository"
	"github.com/festy23/league_admission/internal/league/service"
	teamRepository "github.com/festy23/league_admission/internal/team/repository"
	"github.com/festy23/league_admission/pkg/clock"
)

// RegisterRoutes registers league module routes and returns the service
// so other modules can share the join primitive.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, clk clock.Clock, authn gin.HandlerFunc, logger *zap.SugaredLogger) service.Service {
	svc := NewService(db, clk, logger)
	h := handler.New(svc)

	leagues := r.Group("/leagues")
	leagues.POST("", authn, h.Create)
	leagues.GET("/:id", authn, h.Get)
	leagues.POST("/:id/join", authn, h.Join)

	return svc
}

// NewService wires the league service over db.
func NewService(db *gorm.DB, clk clock.Clock, logger *zap.SugaredLogger) service.Service {
	return service.New(repository.New(db), teamRepository.New(db), db, clk, logger)
}
