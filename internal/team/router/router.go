// Package router provides team module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/team/handler"
	"github.com/festy23/league_admission/internal/team/repository"
	"github.com/festy23/league_admission/internal/team/service"
	userRepository "github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/pkg/clock"
)

// RegisterRoutes registers team module routes behind authn.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, clk clock.Clock, authn gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, userRepository.New(db), clk, logger)
	h := handler.New(svc)

	teams := r.Group("/teams", authn)
	teams.POST("", h.CreateTeam)
	teams.GET("/me", h.GetMyTeam)
}
