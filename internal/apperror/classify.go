package apperror

import (
	"errors"
	"net/http"

	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

// Classification is the outward-facing shape of a failure.
type Classification struct {
	Status   int
	Title    string
	Detail   string
	Code     string
	Disclose bool
	Level    zapcore.Level
	Fields   map[string]any
}

// Classify maps any error to a status-coded classification. 4xx results
// never disclose the raw error; 5xx results always do.
func Classify(err error) Classification {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return classifyDomain(domainErr)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return clientError(http.StatusNotFound, "NOT_FOUND", "the requested resource does not exist")
	}

	cause := err
	var persistErr *PersistenceError
	if errors.As(err, &persistErr) {
		cause = persistErr.Err
	}

	if c, ok := classifyStorage(StorageCodeOf(cause)); ok {
		return c
	}

	return serverError(http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func classifyDomain(e *Error) Classification {
	var c Classification
	switch e.Code {
	case CodeInvalidArgument, CodeInvalidOperation, CodeLeagueIsPrivate:
		c = clientError(http.StatusBadRequest, string(e.Code), e.Message)
	case CodeProfileMissing:
		c = clientError(http.StatusBadRequest, string(e.Code), e.Message)
	case CodeUnauthenticated:
		c = clientError(http.StatusUnauthorized, string(e.Code), e.Message)
	case CodeNotLeagueOwner:
		c = clientError(http.StatusForbidden, string(e.Code), e.Message)
	case CodeLeagueNotFound, CodeTeamNotFound, CodeInvalidInviteToken, CodeRouteNotFound:
		c = clientError(http.StatusNotFound, string(e.Code), e.Message)
	case CodeLeagueFull, CodeAlreadyInLeague, CodeTeamExists, CodeConcurrencyConflict:
		c = clientError(http.StatusConflict, string(e.Code), e.Message)
	case CodeTokenGenerationFailed:
		c = serverError(http.StatusInternalServerError, string(e.Code), e.Message)
	default:
		return serverError(http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
	}
	c.Fields = e.Fields
	return c
}

func classifyStorage(code StorageCode) (Classification, bool) {
	switch code {
	case StorageUniqueViolation:
		return clientError(http.StatusConflict, code.String(), "the request conflicts with an existing record"), true
	case StorageForeignKeyViolation:
		return clientError(http.StatusBadRequest, code.String(), "the request references a record that does not exist"), true
	case StorageNotNullViolation:
		return clientError(http.StatusBadRequest, code.String(), "a required value is missing"), true
	case StorageCheckViolation:
		return clientError(http.StatusBadRequest, code.String(), "a value is outside the allowed range"), true
	case StorageSerializationFailure, StorageDeadlock:
		return clientError(http.StatusConflict, string(CodeConcurrencyConflict), "the resource was modified concurrently, retry the request"), true
	case StorageUndefinedTable, StorageUndefinedColumn:
		return serverError(http.StatusServiceUnavailable, code.String(), "the service storage is not available"), true
	case StorageUnknown:
		return Classification{}, false
	}
	return Classification{}, false
}

func clientError(status int, code, detail string) Classification {
	return Classification{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
		Code:   code,
		Level:  zapcore.WarnLevel,
	}
}

func serverError(status int, code, detail string) Classification {
	return Classification{
		Status:   status,
		Title:    http.StatusText(status),
		Detail:   detail,
		Code:     code,
		Disclose: true,
		Level:    zapcore.ErrorLevel,
	}
}
