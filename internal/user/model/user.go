// Package model provides domain models and DTOs for user module.
package model

import (
	"strings"
	"time"
)

// User is a player profile keyed by the authenticated user id.
// Matches the users table schema.
type User struct {
	ID        int64     `gorm:"primaryKey;column:id;autoIncrement:false" json:"id"`
	FirstName string    `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName  string    `gorm:"column:last_name;type:varchar(100);not null;default:''" json:"last_name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// DisplayName returns the name shown to other players.
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
