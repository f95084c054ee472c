package model

// UpsertProfileRequest represents the request to create or update the caller's profile.
type UpsertProfileRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"max=100"`
}

// ProfileResponse represents a user profile in API responses.
type ProfileResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name"`
}

// NewProfileResponse converts a user to its API representation.
func NewProfileResponse(u *User) *ProfileResponse {
	return &ProfileResponse{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DisplayName: u.DisplayName(),
	}
}
