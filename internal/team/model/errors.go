package model

import "github.com/festy23/league_admission/internal/apperror"

var (
	// ErrTeamNotFound indicates that the user owns no team.
	ErrTeamNotFound = apperror.New(apperror.CodeTeamNotFound, "team not found")
	// ErrTeamExists indicates that the user already owns a team.
	ErrTeamExists = apperror.New(apperror.CodeTeamExists, "user already owns a team")
)

// TeamNotFound returns ErrTeamNotFound for the owner userID.
func TeamNotFound(userID int64) error {
	return ErrTeamNotFound.With("user_id", userID)
}

// TeamExists returns ErrTeamExists for the owner userID.
func TeamExists(userID int64) error {
	return ErrTeamExists.With("user_id", userID)
}
