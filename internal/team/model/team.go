// Package model provides domain models and DTOs for team module.
package model

import "time"

// Team is the single team a user owns.
// Matches the teams table schema.
type Team struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	OwnerID   int64     `gorm:"column:owner_id;not null;uniqueIndex:teams_owner_id_key" json:"owner_id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}
