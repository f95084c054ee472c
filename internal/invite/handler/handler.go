// Package handler provides HTTP handlers for invite endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/league_admission/internal/auth"
	"github.com/festy23/league_admission/internal/invite/service"
	leagueHandler "github.com/festy23/league_admission/internal/league/handler"
)

// Handler handles HTTP requests for invite endpoints.
type Handler struct {
	service service.Service
}

// New creates a new invite handler instance.
func New(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// GetInvite handles GET /leagues/:id/invite request. Owner only.
func (h *Handler) GetInvite(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	leagueID, err := leagueHandler.LeagueID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.GetOrCreateInvite(c.Request.Context(), leagueID, userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Preview handles GET /leagues/join/:token/preview request. No authentication.
func (h *Handler) Preview(c *gin.Context) {
	resp, err := h.service.ValidateAndPreview(c.Request.Context(), c.Param("token"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Redeem handles POST /leagues/join/:token request.
func (h *Handler) Redeem(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Redeem(c.Request.Context(), c.Param("token"), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
