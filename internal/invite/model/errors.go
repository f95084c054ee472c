package model

import "github.com/festy23/league_admission/internal/apperror"

var (
	// ErrInvalidInviteToken is the single outcome for any token that does
	// not resolve to a live league.
	ErrInvalidInviteToken = apperror.New(apperror.CodeInvalidInviteToken, "invite token is invalid")
	// ErrInviteRequiresPrivateLeague indicates an invite request for a public league.
	ErrInviteRequiresPrivateLeague = apperror.New(apperror.CodeInvalidOperation, "invites are only available for private leagues")
	// ErrTokenGenerationFailed indicates that no unique token could be minted.
	ErrTokenGenerationFailed = apperror.New(apperror.CodeTokenGenerationFailed, "could not generate a unique invite token")
)
