package model

// CreateTeamRequest represents the request to create the caller's team.
type CreateTeamRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}
