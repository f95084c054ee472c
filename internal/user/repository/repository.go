// Package repository provides data access layer for user module.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/league_admission/internal/apperror"
	userModel "github.com/festy23/league_admission/internal/user/model"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Upsert creates the profile or updates its name fields.
	Upsert(ctx context.Context, user *userModel.User) (*userModel.User, error)

	// GetByID finds a profile by user id.
	GetByID(ctx context.Context, id int64) (*userModel.User, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Upsert creates the profile or updates its name fields.
func (r *repository) Upsert(ctx context.Context, user *userModel.User) (*userModel.User, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		return nil, apperror.Persist("upsert user", err)
	}

	return r.GetByID(ctx, user.ID)
}

// GetByID finds a profile by user id.
func (r *repository) GetByID(ctx context.Context, id int64) (*userModel.User, error) {
	var user userModel.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ProfileMissing(id)
		}
		return nil, err
	}

	return &user, nil
}
