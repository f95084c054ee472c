// Package apperror defines the closed set of domain error variants, the
// storage-engine error classes, and the classifier that turns any failure
// into a client-safe problem document.
package apperror

import (
	"fmt"
	"maps"
)

// Code identifies a domain error variant.
type Code string

// Domain error variants.
const (
	CodeInvalidArgument       Code = "INVALID_ARGUMENT"
	CodeInvalidOperation      Code = "INVALID_OPERATION"
	CodeUnauthenticated       Code = "UNAUTHENTICATED"
	CodeProfileMissing        Code = "PROFILE_MISSING"
	CodeNotLeagueOwner        Code = "NOT_LEAGUE_OWNER"
	CodeLeagueNotFound        Code = "LEAGUE_NOT_FOUND"
	CodeTeamNotFound          Code = "TEAM_NOT_FOUND"
	CodeInvalidInviteToken    Code = "INVALID_INVITE_TOKEN"
	CodeRouteNotFound         Code = "ROUTE_NOT_FOUND"
	CodeLeagueIsPrivate       Code = "LEAGUE_IS_PRIVATE"
	CodeLeagueFull            Code = "LEAGUE_FULL"
	CodeAlreadyInLeague       Code = "ALREADY_IN_LEAGUE"
	CodeTeamExists            Code = "TEAM_EXISTS"
	CodeConcurrencyConflict   Code = "CONCURRENCY_CONFLICT"
	CodeTokenGenerationFailed Code = "TOKEN_GENERATION_FAILED"
)

// Codes returns every domain error variant.
func Codes() []Code {
	return []Code{
		CodeInvalidArgument,
		CodeInvalidOperation,
		CodeUnauthenticated,
		CodeProfileMissing,
		CodeNotLeagueOwner,
		CodeLeagueNotFound,
		CodeTeamNotFound,
		CodeInvalidInviteToken,
		CodeRouteNotFound,
		CodeLeagueIsPrivate,
		CodeLeagueFull,
		CodeAlreadyInLeague,
		CodeTeamExists,
		CodeConcurrencyConflict,
		CodeTokenGenerationFailed,
	}
}

// Error is a named domain failure carrying structured context.
// Two Errors match under errors.Is when their codes are equal, so package
// level sentinels can be compared against errors built with extra fields.
type Error struct {
	Code    Code
	Message string
	Fields  map[string]any
	Err     error
}

// New creates a domain error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a domain error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// With returns a copy of e with key set to value in its fields.
func (e *Error) With(key string, value any) *Error {
	clone := *e
	clone.Fields = maps.Clone(e.Fields)
	if clone.Fields == nil {
		clone.Fields = make(map[string]any, 1)
	}
	clone.Fields[key] = value
	return &clone
}

// Wrap returns a copy of e with err attached as its cause.
func (e *Error) Wrap(err error) *Error {
	clone := *e
	clone.Err = err
	return &clone
}

var (
	// ErrInvalidArgument indicates malformed or out-of-range input.
	ErrInvalidArgument = New(CodeInvalidArgument, "invalid argument")
	// ErrUnauthenticated indicates the request carries no valid identity.
	ErrUnauthenticated = New(CodeUnauthenticated, "authentication required")
	// ErrRouteNotFound indicates a request matching no registered route.
	ErrRouteNotFound = New(CodeRouteNotFound, "no route matches the request")
	// ErrProfileMissing indicates an authenticated user without a profile.
	ErrProfileMissing = New(CodeProfileMissing, "user profile not found")
)

// InvalidArgument creates an ErrInvalidArgument naming the offending field.
func InvalidArgument(field, reason string) *Error {
	return Newf(CodeInvalidArgument, "%s %s", field, reason).With("field", field)
}
