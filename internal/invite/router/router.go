// Package router provides invite module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/config"
	"github.com/festy23/league_admission/internal/invite/handler"
	"github.com/festy23/league_admission/internal/invite/repository"
	"github.com/festy23/league_admission/internal/invite/service"
	leagueRepository "github.com/festy23/league_admission/internal/league/repository"
	userRepository "github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/pkg/clock"
	"github.com/festy23/league_admission/pkg/token"
)

// Deps are the collaborators shared with other modules.
type Deps struct {
	DB     *gorm.DB
	Joiner service.Joiner
	Tokens service.TokenGenerator
	Config config.InviteConfig
	Clock  clock.Clock
	Logger *zap.SugaredLogger
}

// RegisterRoutes registers invite module routes. Preview needs no credentials.
func RegisterRoutes(r gin.IRouter, deps Deps, authn gin.HandlerFunc) {
	tokens := deps.Tokens
	if tokens == nil {
		tokens = token.NewGenerator(nil)
	}

	svc := service.New(
		repository.New(deps.DB),
		leagueRepository.New(deps.DB),
		userRepository.New(deps.DB),
		deps.Joiner,
		tokens,
		deps.Config,
		deps.Clock,
		deps.Logger,
	)
	h := handler.New(svc)

	leagues := r.Group("/leagues")
	leagues.GET("/:id/invite", authn, h.GetInvite)
	leagues.GET("/join/:token/preview", h.Preview)
	leagues.POST("/join/:token", authn, h.Redeem)
}
