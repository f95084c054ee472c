// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/auth"
	teamModel "github.com/festy23/league_admission/internal/team/model"
	"github.com/festy23/league_admission/internal/team/service"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
}

// New creates a new team handler instance.
func New(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// CreateTeam handles POST /teams request.
func (h *Handler) CreateTeam(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req teamModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.InvalidArgument("body", "is malformed").Wrap(err))
		return
	}

	team, err := h.service.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetMyTeam handles GET /teams/me request.
func (h *Handler) GetMyTeam(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	team, err := h.service.GetMyTeam(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, team)
}
