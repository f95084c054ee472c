// Package model provides domain models and DTOs for league module.
package model

import "time"

// League is a competitive group with a capacity and a visibility flag.
// Matches the leagues table schema.
type League struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string    `gorm:"column:description;type:varchar(500);not null;default:''" json:"description"`
	IsPrivate   bool      `gorm:"column:is_private;not null;default:false" json:"is_private"`
	Capacity    int       `gorm:"column:capacity;not null;check:leagues_capacity_positive,capacity > 0" json:"capacity"`
	OwnerID     int64     `gorm:"column:owner_id;not null;index:idx_leagues_owner_id" json:"owner_id"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (League) TableName() string {
	return "leagues"
}

// IsFull reports whether memberCount leaves no open slot.
func (l *League) IsFull(memberCount int) bool {
	return memberCount >= l.Capacity
}

// Membership records a team's place in a league. Rows are append-only.
// Matches the league_members table schema.
type Membership struct {
	ID        int64     `gorm:"primaryKey;column:id" json:"id"`
	LeagueID  int64     `gorm:"column:league_id;not null;uniqueIndex:league_members_league_team_key,priority:1" json:"league_id"`
	TeamID    int64     `gorm:"column:team_id;not null;uniqueIndex:league_members_league_team_key,priority:2" json:"team_id"`
	JoinedAt  time.Time `gorm:"column:joined_at;not null" json:"joined_at"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	CreatedBy int64     `gorm:"column:created_by;not null" json:"created_by"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "league_members"
}

// NewMembership builds a membership row whose audit timestamps share one instant.
func NewMembership(leagueID, teamID, createdBy int64, now time.Time) *Membership {
	return &Membership{
		LeagueID:  leagueID,
		TeamID:    teamID,
		JoinedAt:  now,
		CreatedAt: now,
		CreatedBy: createdBy,
	}
}
