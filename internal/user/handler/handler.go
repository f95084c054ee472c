// Package handler provides HTTP handlers for user endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/auth"
	userModel "github.com/festy23/league_admission/internal/user/model"
	"github.com/festy23/league_admission/internal/user/service"
)

// Handler handles HTTP requests for user endpoints.
type Handler struct {
	service service.Service
}

// New creates a new user handler instance.
func New(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// UpsertMe handles PUT /users/me request.
func (h *Handler) UpsertMe(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req userModel.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.InvalidArgument("body", "is malformed").Wrap(err))
		return
	}

	resp, err := h.service.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMe handles GET /users/me request.
func (h *Handler) GetMe(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
