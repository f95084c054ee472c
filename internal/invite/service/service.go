// Package service provides business logic layer for invite module.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/config"
	inviteModel "github.com/festy23/league_admission/internal/invite/model"
	"github.com/festy23/league_admission/internal/invite/repository"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
	leagueRepository "github.com/festy23/league_admission/internal/league/repository"
	userModel "github.com/festy23/league_admission/internal/user/model"
	userRepository "github.com/festy23/league_admission/internal/user/repository"
	"github.com/festy23/league_admission/pkg/clock"
	"github.com/festy23/league_admission/pkg/token"
)

// maxTokenLength matches the width of league_invites.token.
const maxTokenLength = 32

// Service defines the interface for invite business logic operations.
type Service interface {
	// GetOrCreateInvite returns the league's invite, minting it on first request.
	GetOrCreateInvite(ctx context.Context, leagueID, requesterID int64) (*inviteModel.InviteResponse, error)

	// ValidateAndPreview resolves a token to a summary of its league.
	ValidateAndPreview(ctx context.Context, code string) (*inviteModel.Preview, error)

	// Redeem enrolls the caller's team into the token's league.
	Redeem(ctx context.Context, code string, userID int64) (*leagueModel.LeagueResponse, error)
}

// Joiner is the league admission primitive.
type Joiner interface {
	Join(ctx context.Context, leagueID, userID int64, bypassPrivacyGate bool) (*leagueModel.LeagueResponse, error)
}

// TokenGenerator mints candidate invite tokens.
type TokenGenerator interface {
	Generate(length int) (string, error)
}

type service struct {
	repo    repository.Repository
	leagues leagueRepository.Repository
	users   userRepository.Repository
	joiner  Joiner
	tokens  TokenGenerator
	cfg     config.InviteConfig
	clock   clock.Clock
	logger  *zap.SugaredLogger
}

// New creates a new invite service instance.
func New(
	repo repository.Repository,
	leagues leagueRepository.Repository,
	users userRepository.Repository,
	joiner Joiner,
	tokens TokenGenerator,
	cfg config.InviteConfig,
	clk clock.Clock,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		leagues: leagues,
		users:   users,
		joiner:  joiner,
		tokens:  tokens,
		cfg:     cfg,
		clock:   clk,
		logger:  logger,
	}
}

// GetOrCreateInvite returns the league's invite, minting it on first request.
// Concurrent first requests converge on one persisted token.
func (s *service) GetOrCreateInvite(ctx context.Context, leagueID, requesterID int64) (*inviteModel.InviteResponse, error) {
	if leagueID <= 0 {
		return nil, apperror.InvalidArgument("league_id", "must be positive")
	}
	if requesterID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	league, err := s.leagues.GetByID(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if league.OwnerID != requesterID {
		return nil, leagueModel.NotLeagueOwner(leagueID)
	}
	if !league.IsPrivate {
		return nil, inviteModel.ErrInviteRequiresPrivateLeague.With("league_id", leagueID)
	}

	existing, err := s.repo.GetByLeague(ctx, leagueID)
	if err == nil {
		return inviteModel.NewInviteResponse(existing, s.cfg.BaseURL), nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	invite, err := s.mint(ctx, leagueID, requesterID)
	if err != nil {
		return nil, err
	}

	return inviteModel.NewInviteResponse(invite, s.cfg.BaseURL), nil
}

// mint generates a token unused by any invite and persists it. A collision
// is retried up to the configured number of attempts.
func (s *service) mint(ctx context.Context, leagueID, requesterID int64) (*inviteModel.Invite, error) {
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		code, err := s.tokens.Generate(s.cfg.TokenLength)
		if err != nil {
			return nil, inviteModel.ErrTokenGenerationFailed.With("league_id", leagueID).Wrap(err)
		}

		taken, err := s.repo.TokenExists(ctx, code)
		if err != nil {
			return nil, err
		}
		if taken {
			s.logger.Warnw("invite token collision", "league_id", leagueID, "attempt", attempt)
			continue
		}

		created, err := s.repo.CreateIfAbsent(ctx, &inviteModel.Invite{
			LeagueID:  leagueID,
			Token:     code,
			CreatedBy: requesterID,
			CreatedAt: s.clock.Now(),
		})
		if errors.Is(err, repository.ErrTokenTaken) {
			s.logger.Warnw("invite token collision on insert", "league_id", leagueID, "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}

		// Re-read so a request that lost the insert race returns the winner's token.
		stored, err := s.repo.GetByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		if created {
			s.logger.Infow("invite created", "league_id", leagueID, "created_by", requesterID)
		}
		return stored, nil
	}

	s.logger.Errorw("invite token generation exhausted",
		"league_id", leagueID,
		"attempts", s.cfg.MaxAttempts,
	)
	return nil, inviteModel.ErrTokenGenerationFailed.
		With("league_id", leagueID).
		With("attempts", s.cfg.MaxAttempts)
}

// ValidateAndPreview resolves a token to a summary of its league.
func (s *service) ValidateAndPreview(ctx context.Context, code string) (*inviteModel.Preview, error) {
	league, err := s.resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	count, err := s.leagues.CountMembers(ctx, league.ID)
	if err != nil {
		return nil, err
	}

	ownerName := ""
	owner, err := s.users.GetByID(ctx, league.OwnerID)
	switch {
	case err == nil:
		ownerName = owner.DisplayName()
	case !errors.Is(err, userModel.ErrProfileMissing):
		return nil, err
	}

	return &inviteModel.Preview{
		LeagueID:    league.ID,
		Name:        league.Name,
		Description: league.Description,
		OwnerName:   ownerName,
		MemberCount: count,
		Capacity:    league.Capacity,
		IsFull:      league.IsFull(count),
		IsPrivate:   league.IsPrivate,
	}, nil
}

// Redeem enrolls the caller's team into the token's league, skipping only
// the privacy gate.
func (s *service) Redeem(ctx context.Context, code string, userID int64) (*leagueModel.LeagueResponse, error) {
	if userID <= 0 {
		return nil, apperror.InvalidArgument("user_id", "must be positive")
	}

	league, err := s.resolve(ctx, code)
	if err != nil {
		return nil, err
	}

	resp, err := s.joiner.Join(ctx, league.ID, userID, true)
	if errors.Is(err, leagueModel.ErrLeagueNotFound) {
		return nil, inviteModel.ErrInvalidInviteToken
	}
	if err != nil {
		return nil, err
	}

	s.logger.Infow("invite redeemed", "league_id", league.ID, "user_id", userID)
	return resp, nil
}

// resolve maps a token to its live league. Every miss yields the same
// ErrInvalidInviteToken so callers learn nothing about why.
func (s *service) resolve(ctx context.Context, code string) (*leagueModel.League, error) {
	if !token.WellFormed(code, maxTokenLength) {
		return nil, inviteModel.ErrInvalidInviteToken
	}

	invite, err := s.repo.GetByToken(ctx, code)
	if err != nil {
		return nil, err
	}

	league, err := s.leagues.GetByID(ctx, invite.LeagueID)
	if errors.Is(err, leagueModel.ErrLeagueNotFound) {
		return nil, inviteModel.ErrInvalidInviteToken
	}
	if err != nil {
		return nil, err
	}

	return league, nil
}
