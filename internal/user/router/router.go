// Package router provides user module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/user/handler"
	"github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/internal/user/service"
)

// RegisterRoutes registers user module routes behind authn.
func RegisterRoutes(r gin.IRouter, db *gorm.DB, authn gin.HandlerFunc, logger *zap.SugaredLogger) {
	repo := repository.New(db)
	svc := service.New(repo, logger)
	h := handler.New(svc)

	users := r.Group("/users", authn)
	users.PUT("/me", h.UpsertMe)
	users.GET("/me", h.GetMe)
}
