// Package model provides domain models and DTOs for invite module.
package model

import "time"

// Invite is the single live shareable token of a private league.
// Matches the league_invites table schema.
type Invite struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	LeagueID  int64     `gorm:"column:league_id;not null;uniqueIndex:league_invites_league_id_key" json:"league_id"`
	Token     string    `gorm:"column:token;type:varchar(32);not null;uniqueIndex:league_invites_token_key" json:"token"`
	CreatedBy int64     `gorm:"column:created_by;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Invite) TableName() string {
	return "league_invites"
}
