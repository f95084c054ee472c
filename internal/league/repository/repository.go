// Package repository provides data access layer for league module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/league_admission/internal/apperror"
	leagueModel "github.com/festy23/league_admission/internal/league/model"
)

// Repository defines the interface for league data access operations.
type Repository interface {
	// WithTx returns a repository bound to tx.
	WithTx(tx *gorm.DB) Repository

	// Create creates a new league.
	Create(ctx context.Context, league *leagueModel.League) (*leagueModel.League, error)

	// GetByID finds a league by id.
	GetByID(ctx context.Context, id int64) (*leagueModel.League, error)

	// GetByIDForUpdate finds a league by id and locks its row until the
	// surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*leagueModel.League, error)

	// CountMembers returns the number of teams enrolled in a league.
	CountMembers(ctx context.Context, leagueID int64) (int, error)

	// IsMember reports whether teamID is enrolled in leagueID.
	IsMember(ctx context.Context, leagueID, teamID int64) (bool, error)

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, membership *leagueModel.Membership) error

	// ListMembers returns the roster of a league in join order.
	ListMembers(ctx context.Context, leagueID int64) ([]leagueModel.MemberSummary, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new league repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

// Create creates a new league.
func (r *repository) Create(ctx context.Context, league *leagueModel.League) (*leagueModel.League, error) {
	if err := r.db.WithContext(ctx).Create(league).Error; err != nil {
		return nil, apperror.Persist("insert league", err)
	}
	return league, nil
}

// GetByID finds a league by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*leagueModel.League, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetByIDForUpdate finds a league by id and locks its row.
// SQLite has no row locks and serializes writers instead.
func (r *repository) GetByIDForUpdate(ctx context.Context, id int64) (*leagueModel.League, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *repository) get(q *gorm.DB, id int64) (*leagueModel.League, error) {
	var league leagueModel.League
	err := q.Where("id = ?", id).First(&league).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leagueModel.LeagueNotFound(id)
		}
		return nil, err
	}

	return &league, nil
}

// CountMembers returns the number of teams enrolled in a league.
func (r *repository) CountMembers(ctx context.Context, leagueID int64) (int, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&leagueModel.Membership{}).
		Where("league_id = ?", leagueID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// IsMember reports whether teamID is enrolled in leagueID.
func (r *repository) IsMember(ctx context.Context, leagueID, teamID int64) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&leagueModel.Membership{}).
		Where("league_id = ? AND team_id = ?", leagueID, teamID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddMember inserts a membership row.
func (r *repository) AddMember(ctx context.Context, membership *leagueModel.Membership) error {
	err := r.db.WithContext(ctx).Create(membership).Error
	if err != nil {
		// A concurrent join of the same pair loses on league_members_league_team_key.
		if apperror.IsUniqueViolation(err) {
			return leagueModel.AlreadyInLeague(membership.LeagueID, membership.TeamID)
		}
		return apperror.Persist("insert membership", err)
	}
	return nil
}

// ListMembers returns the roster of a league in join order.
func (r *repository) ListMembers(ctx context.Context, leagueID int64) ([]leagueModel.MemberSummary, error) {
	var members []leagueModel.MemberSummary

	err := r.db.WithContext(ctx).
		Table("league_members AS m").
		Select("m.team_id, t.name AS team_name, t.owner_id, m.joined_at").
		Joins("JOIN teams AS t ON t.id = m.team_id").
		Where("m.league_id = ?", leagueID).
		Order("m.joined_at ASC, m.id ASC").
		Scan(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		return []leagueModel.MemberSummary{}, nil
	}

	return members, nil
}
