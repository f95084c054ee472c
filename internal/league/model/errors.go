package model

import "github.com/festy23/league_admission/internal/apperror"

var (
	// ErrLeagueNotFound indicates that the league does not exist.
	ErrLeagueNotFound = apperror.New(apperror.CodeLeagueNotFound, "league not found")
	// ErrLeagueIsPrivate indicates a direct join into a private league.
	ErrLeagueIsPrivate = apperror.New(apperror.CodeLeagueIsPrivate, "league is private, an invite is required to join")
	// ErrLeagueFull indicates that the league has no open slot.
	ErrLeagueFull = apperror.New(apperror.CodeLeagueFull, "league is full")
	// ErrAlreadyInLeague indicates that the team is already a member.
	ErrAlreadyInLeague = apperror.New(apperror.CodeAlreadyInLeague, "team is already a member of this league")
	// ErrNotLeagueOwner indicates that the caller does not own the league.
	ErrNotLeagueOwner = apperror.New(apperror.CodeNotLeagueOwner, "only the league owner can perform this action")
)

// LeagueNotFound returns ErrLeagueNotFound for leagueID.
func LeagueNotFound(leagueID int64) error {
	return ErrLeagueNotFound.With("league_id", leagueID)
}

// LeagueIsPrivate returns ErrLeagueIsPrivate for leagueID.
func LeagueIsPrivate(leagueID int64) error {
	return ErrLeagueIsPrivate.With("league_id", leagueID)
}

// LeagueFull returns ErrLeagueFull carrying the league's capacity.
func LeagueFull(leagueID int64, capacity int) error {
	return ErrLeagueFull.With("league_id", leagueID).With("capacity", capacity)
}

// AlreadyInLeague returns ErrAlreadyInLeague for the pair.
func AlreadyInLeague(leagueID, teamID int64) error {
	return ErrAlreadyInLeague.With("league_id", leagueID).With("team_id", teamID)
}

// NotLeagueOwner returns ErrNotLeagueOwner for leagueID.
func NotLeagueOwner(leagueID int64) error {
	return ErrNotLeagueOwner.With("league_id", leagueID)
}
