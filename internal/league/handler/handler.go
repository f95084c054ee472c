// Package handler provides HTTP handlers for league endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/auth"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
	"github.com/festy23/league_admission/internal/league/service"
)

// Handler handles HTTP requests for league endpoints.
type Handler struct {
	service service.Service
}

// New creates a new league handler instance.
func New(svc service.Service) *Handler {
	return &Handler{service: svc}
}

// Create handles POST /leagues request.
func (h *Handler) Create(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req leagueModel.CreateLeagueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperror.InvalidArgument("body", "is malformed").Wrap(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /leagues/:id request.
func (h *Handler) Get(c *gin.Context) {
	leagueID, err := LeagueID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Get(c.Request.Context(), leagueID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Join handles POST /leagues/:id/join request. Private leagues reject it.
func (h *Handler) Join(c *gin.Context) {
	userID, err := auth.UserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	leagueID, err := LeagueID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	resp, err := h.service.Join(c.Request.Context(), leagueID, userID, false)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// LeagueID parses the :id path parameter.
func LeagueID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.InvalidArgument("league_id", "must be a positive integer")
	}
	return id, nil
}
