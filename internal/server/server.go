// Package server assembles the HTTP surface of the admission service.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/auth"
	"github.com/festy23/league_admission/internal/config"
	"github.com/festy23/league_admission/internal/health"
	inviteRouter "github.com/festy23/league_admission/internal/invite/router"
	inviteService "github.com/festy23/league_admission/internal/invite/service"
	leagueRouter "github.com/festy23/league_admission/internal/league/router"
	"github.com/festy23/league_admission/internal/middleware"
	teamRouter "github.com/festy23/league_admission/internal/team/router"
	userRouter "github.com/festy23/league_admission/internal/user/router"
	"github.com/festy23/league_admission/pkg/clock"
)

// Deps holds what the router needs.
type Deps struct {
	DB     *gorm.DB
	Config config.Config
	Clock  clock.Clock
	// Tokens overrides the invite token source. Nil uses crypto/rand.
	Tokens inviteService.TokenGenerator
	Logger *zap.SugaredLogger
}

// NewRouter builds the gin engine with middleware and every module's routes.
func NewRouter(d Deps) *gin.Engine {
	clk := d.Clock
	if clk == nil {
		clk = clock.System{}
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.Errors(d.Logger),
	)
	r.NoRoute(middleware.NotFound())

	r.GET("/health", health.New(d.DB, d.Logger).Check)

	authn := auth.Authenticate(auth.NewVerifier(d.Config.Auth))

	userRouter.RegisterRoutes(r, d.DB, authn, d.Logger)
	teamRouter.RegisterRoutes(r, d.DB, clk, authn, d.Logger)
	leagues := leagueRouter.RegisterRoutes(r, d.DB, clk, authn, d.Logger)
	inviteRouter.RegisterRoutes(r, inviteRouter.Deps{
		DB:     d.DB,
		Joiner: leagues,
		Tokens: d.Tokens,
		Config: d.Config.Invite,
		Clock:  clk,
		Logger: d.Logger,
	}, authn)

	return r
}

// NewHTTPServer wraps handler in an http.Server configured from cfg.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.GetAddress(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}
