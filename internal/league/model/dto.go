package model

import "time"

// CreateLeagueRequest represents the request to create a league.
type CreateLeagueRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	IsPrivate   bool   `json:"is_private"`
}

// MemberSummary represents one roster entry of a league.
type MemberSummary struct {
	TeamID   int64     `json:"team_id"`
	TeamName string    `json:"team_name"`
	OwnerID  int64     `json:"owner_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// LeagueResponse is the public representation of a league.
type LeagueResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsPrivate   bool            `json:"is_private"`
	Capacity    int             `json:"capacity"`
	OwnerID     int64           `json:"owner_id"`
	CreatedAt   time.Time       `json:"created_at"`
	MemberCount int             `json:"member_count"`
	IsFull      bool            `json:"is_full"`
	Members     []MemberSummary `json:"members"`
}

// NewLeagueResponse combines a league with its roster.
func NewLeagueResponse(l *League, members []MemberSummary) *LeagueResponse {
	if members == nil {
		members = []MemberSummary{}
	}
	return &LeagueResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		IsPrivate:   l.IsPrivate,
		Capacity:    l.Capacity,
		OwnerID:     l.OwnerID,
		CreatedAt:   l.CreatedAt,
		MemberCount: len(members),
		IsFull:      l.IsFull(len(members)),
		Members:     members,
	}
}
