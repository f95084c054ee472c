// Package service provides business logic layer for team module.
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/festy23/league_admission/internal/apperror"
	teamModel "github.com/festy23/league_admission/internal/team/model"
	"github.com/festy23/league_admission/internal/team/repository"
	userRepository "github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/pkg/clock"
)

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates the caller's team.
	CreateTeam(ctx context.Context, userID int64, req *teamModel.CreateTeamRequest) (*teamModel.Team, error)

	// GetMyTeam returns the caller's team.
	GetMyTeam(ctx context.Context, userID int64) (*teamModel.Team, error)
}

type service struct {
	repo   repository.Repository
	users  userRepository.Repository
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, users userRepository.Repository, clk clock.Clock, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		clock:  clk,
		logger: logger,
	}
}

// CreateTeam creates the caller's team. A user owns at most one team.
func (s *service) CreateTeam(ctx context.Context, userID int64, req *teamModel.CreateTeamRequest) (*teamModel.Team, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.InvalidArgument("name", "is required")
	}

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	team, err := s.repo.Create(ctx, &teamModel.Team{
		OwnerID:   userID,
		Name:      name,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "owner_id", userID)
	return team, nil
}

// GetMyTeam returns the caller's team.
func (s *service) GetMyTeam(ctx context.Context, userID int64) (*teamModel.Team, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}
	return s.repo.GetByOwner(ctx, userID)
}
