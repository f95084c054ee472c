package model

import "github.com/festy23/league_admission/internal/apperror"

// ErrProfileMissing indicates that the authenticated user has no profile.
var ErrProfileMissing = apperror.ErrProfileMissing

// ProfileMissing returns ErrProfileMissing for userID.
func ProfileMissing(userID int64) error {
	return ErrProfileMissing.With("user_id", userID)
}
