// Package service provides business logic layer for league module.
package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/apperror"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
	"github.com/festy23/league_admission/internal/league/repository"
	teamRepository "github.com/festy23/league_admission/internal/team/repository"
	"github.com/festy23/league_admission/pkg/clock"
)

const maxDescriptionLength = 500

// Service defines the interface for league business logic operations.
type Service interface {
	// Create creates a league owned by userID and enrolls the owner's team.
	Create(ctx context.Context, userID int64, req *leagueModel.CreateLeagueRequest) (*leagueModel.LeagueResponse, error)

	// Get returns the public representation of a league.
	Get(ctx context.Context, leagueID int64) (*leagueModel.LeagueResponse, error)

	// Join enrolls the team owned by userID into leagueID. The privacy gate
	// is skipped when bypassPrivacyGate is set; capacity and duplicate
	// membership are always enforced.
	Join(ctx context.Context, leagueID, userID int64, bypassPrivacyGate bool) (*leagueModel.LeagueResponse, error)
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	db     *gorm.DB
	clock  clock.Clock
	logger *zap.SugaredLogger
}

// New creates a new league service instance.
func New(
	repo repository.Repository,
	teams teamRepository.Repository,
	db *gorm.DB,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		db:     db,
		clock:  clk,
		logger: logger,
	}
}

// Create creates a league and enrolls the owner's team as its first member
// in one transaction.
func (s *service) Create(ctx context.Context, userID int64, req *leagueModel.CreateLeagueRequest) (*leagueModel.LeagueResponse, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.InvalidArgument("name", "is required")
	}
	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return nil, apperror.InvalidArgument("description", "is too long")
	}
	if req.Capacity <= 0 {
		return nil, apperror.InvalidArgument("capacity", "must be positive")
	}

	var result *leagueModel.LeagueResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		leagues := s.repo.WithTx(tx)

		team, err := s.teams.WithTx(tx).GetByOwner(ctx, userID)
		if err != nil {
			return err
		}

		now := s.clock.Now()
		league, err := leagues.Create(ctx, &leagueModel.League{
			Name:        name,
			Description: description,
			IsPrivate:   req.IsPrivate,
			Capacity:    req.Capacity,
			OwnerID:     userID,
			CreatedAt:   now,
		})
		if err != nil {
			return err
		}

		if err := leagues.AddMember(ctx, leagueModel.NewMembership(league.ID, team.ID, userID, now)); err != nil {
			return err
		}

		result, err = present(ctx, leagues, league)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("league created",
		"league_id", result.ID,
		"owner_id", userID,
		"capacity", result.Capacity,
		"is_private", result.IsPrivate,
	)
	return result, nil
}

// Get returns the public representation of a league.
func (s *service) Get(ctx context.Context, leagueID int64) (*leagueModel.LeagueResponse, error) {
	if leagueID <= 0 {
		return nil, apperror.InvalidArgument("league_id", "must be positive")
	}

	league, err := s.repo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	return present(ctx, s.repo, league)
}

// Join is the single admission path for direct joins and invite
// redemption. Checks run in order and the first failure wins.
func (s *service) Join(ctx context.Context, leagueID, userID int64, bypassPrivacyGate bool) (*leagueModel.LeagueResponse, error) {
	if leagueID <= 0 {
		return nil, apperror.InvalidArgument("league_id", "must be positive")
	}
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	var (
		result *leagueModel.LeagueResponse
		teamID int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		leagues := s.repo.WithTx(tx)

		// The row lock serializes joins into the same league so the
		// count below cannot go stale before the insert.
		league, err := leagues.GetByIDForUpdate(ctx, leagueID)
		if err != nil {
			return err
		}

		if !bypassPrivacyGate && league.IsPrivate {
			return leagueModel.LeagueIsPrivate(leagueID)
		}

		count, err := leagues.CountMembers(ctx, leagueID)
		if err != nil {
			return err
		}
		if league.IsFull(count) {
			return leagueModel.LeagueFull(leagueID, league.Capacity)
		}

		team, err := s.teams.WithTx(tx).GetByOwner(ctx, userID)
		if err != nil {
			return err
		}
		teamID = team.ID

		member, err := leagues.IsMember(ctx, leagueID, team.ID)
		if err != nil {
			return err
		}
		if member {
			return leagueModel.AlreadyInLeague(leagueID, team.ID)
		}

		if err := leagues.AddMember(ctx, leagueModel.NewMembership(leagueID, team.ID, userID, s.clock.Now())); err != nil {
			return err
		}

		result, err = present(ctx, leagues, league)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("team joined league",
		"league_id", leagueID,
		"team_id", teamID,
		"user_id", userID,
		"via_invite", bypassPrivacyGate,
		"member_count", result.MemberCount,
	)
	return result, nil
}

func present(ctx context.Context, repo repository.Repository, league *leagueModel.League) (*leagueModel.LeagueResponse, error) {
	members, err := repo.ListMembers(ctx, league.ID)
	if err != nil {
		return nil, err
	}
	return leagueModel.NewLeagueResponse(league, members), nil
}
