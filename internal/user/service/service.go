// Package service provides business logic layer for user module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/league_admission/internal/apperror"
	userModel "github.com/festy23/league_admission/internal/user/model"
	"github.com/festy23/league_admission/internal/user/repository"
)

// Service defines the interface for user business logic operations.
type Service interface {
	// UpsertProfile creates or updates the caller's profile.
	UpsertProfile(ctx context.Context, userID int64, req *userModel.UpsertProfileRequest) (*userModel.ProfileResponse, error)

	// GetProfile returns the caller's profile.
	GetProfile(ctx context.Context, userID int64) (*userModel.ProfileResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// UpsertProfile creates or updates the caller's profile.
func (s *service) UpsertProfile(ctx context.Context, userID int64, req *userModel.UpsertProfileRequest) (*userModel.ProfileResponse, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		return nil, apperror.InvalidArgument("first_name", "is required")
	}

	user, err := s.repo.Upsert(ctx, &userModel.User{
		ID:        userID,
		FirstName: firstName,
		LastName:  strings.TrimSpace(req.LastName),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debugw("profile saved", "user_id", userID)
	return userModel.NewProfileResponse(user), nil
}

// GetProfile returns the caller's profile.
func (s *service) GetProfile(ctx context.Context, userID int64) (*userModel.ProfileResponse, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return userModel.NewProfileResponse(user), nil
}
