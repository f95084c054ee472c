// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/festy23/league_admission/internal/apperror"
	teamModel "github.com/festy23/league_admission/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// WithTx returns a repository bound to tx.
	WithTx(tx *gorm.DB) Repository

	// Create creates a new team.
	Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error)

	// GetByOwner finds the team owned by userID.
	GetByOwner(ctx context.Context, userID int64) (*teamModel.Team, error)

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id int64) (*teamModel.Team, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create creates a new team.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) (*teamModel.Team, error) {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		// One team per owner is enforced by teams_owner_id_key.
		if apperror.IsUniqueViolation(err) {
			return nil, teamModel.TeamExists(team.OwnerID)
		}
		return nil, apperror.Persist("insert team", err)
	}

	return team, nil
}

// GetByOwner finds the team owned by userID.
func (r *repository) GetByOwner(ctx context.Context, userID int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", userID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.TeamNotFound(userID)
		}
		return nil, err
	}

	return &team, nil
}

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).First(&team, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound.With("team_id", id)
		}
		return nil, err
	}

	return &team, nil
}
