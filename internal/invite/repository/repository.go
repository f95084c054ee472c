// Package repository provides data access layer for invite module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/league_admission/internal/apperror"
	inviteModel "github.com/festy23/league_admission/internal/invite/model"
)

var (
	// ErrNotFound indicates that the league has no invite yet.
	ErrNotFound = errors.New("invite not found")
	// ErrTokenTaken indicates that another invite already uses the token.
	ErrTokenTaken = errors.New("invite token already in use")
)

// Repository defines the interface for invite data access operations.
type Repository interface {
	// GetByLeague finds the invite of a league.
	GetByLeague(ctx context.Context, leagueID int64) (*inviteModel.Invite, error)

	// GetByToken finds an invite by exact token match.
	GetByToken(ctx context.Context, token string) (*inviteModel.Invite, error)

	// TokenExists reports whether any invite uses token.
	TokenExists(ctx context.Context, token string) (bool, error)

	// CreateIfAbsent inserts invite unless its league already has one.
	// It reports whether the row was inserted.
	CreateIfAbsent(ctx context.Context, invite *inviteModel.Invite) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new invite repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByLeague finds the invite of a league.
func (r *repository) GetByLeague(ctx context.Context, leagueID int64) (*inviteModel.Invite, error) {
	var invite inviteModel.Invite
	err := r.db.WithContext(ctx).
		Where("league_id = ?", leagueID).
		First(&invite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &invite, nil
}

// GetByToken finds an invite by exact token match.
func (r *repository) GetByToken(ctx context.Context, token string) (*inviteModel.Invite, error) {
	var invite inviteModel.Invite
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&invite).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, inviteModel.ErrInvalidInviteToken
		}
		return nil, err
	}

	return &invite, nil
}

// TokenExists reports whether any invite uses token.
func (r *repository) TokenExists(ctx context.Context, token string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&inviteModel.Invite{}).
		Where("token = ?", token).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateIfAbsent inserts invite unless its league already has one.
// The league_id conflict is absorbed; a token conflict is ErrTokenTaken.
func (r *repository) CreateIfAbsent(ctx context.Context, invite *inviteModel.Invite) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "league_id"}},
			DoNothing: true,
		}).
		Create(invite)

	if res.Error != nil {
		if apperror.IsUniqueViolation(res.Error) {
			return false, ErrTokenTaken
		}
		return false, apperror.Persist("insert invite", res.Error)
	}

	return res.RowsAffected == 1, nil
}
