package model

import (
	"strings"
	"time"
)

// JoinPath is the route prefix under which invite tokens are redeemed.
const JoinPath = "/leagues/join/"

// InviteResponse is the descriptor returned to the league owner.
type InviteResponse struct {
	LeagueID  int64     `json:"league_id"`
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// NewInviteResponse builds the descriptor with a shareable link under baseURL.
func NewInviteResponse(inv *Invite, baseURL string) *InviteResponse {
	return &InviteResponse{
		LeagueID:  inv.LeagueID,
		Token:     inv.Token,
		URL:       ShareURL(baseURL, inv.Token),
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt,
	}
}

// ShareURL returns the fully-qualified link embedding token.
func ShareURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + JoinPath + token
}

// Preview is what a prospective member sees before redeeming a token.
type Preview struct {
	LeagueID    int64  `json:"league_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerName   string `json:"owner_name"`
	MemberCount int    `json:"member_count"`
	Capacity    int    `json:"capacity"`
	IsFull      bool   `json:"is_full"`
	IsPrivate   bool   `json:"is_private"`
}
