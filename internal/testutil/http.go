package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/festy23/league_admission/internal/auth"
	"github.com/festy23/league_admission/internal/config"
	"github.com/festy23/league_admission/internal/middleware"
)

// AuthConfig signs and verifies test access tokens.
var AuthConfig = config.AuthConfig{
	JWTSecret: "test-secret-test-secret-test-secret!",
	Issuer:    "league-admission-test",
}

// Authn returns the authentication middleware for AuthConfig.
func Authn() gin.HandlerFunc {
	return auth.Authenticate(auth.NewVerifier(AuthConfig))
}

// Bearer returns an Authorization header value for userID.
func Bearer(t testing.TB, userID int64) string {
	t.Helper()
	raw, err := auth.NewSigner(AuthConfig, time.Hour).Sign(userID, time.Now())
	require.NoError(t, err)
	return "Bearer " + raw
}

// NewEngine returns a test-mode engine with the error boundary installed.
func NewEngine(t testing.TB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Errors(zaptest.NewLogger(t).Sugar()))
	return r
}

// Do performs a request against r. A zero userID sends no credentials.
func Do(t testing.TB, r http.Handler, method, path string, userID int64, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("Authorization", Bearer(t, userID))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the response body into v.
func Decode[T any](t testing.TB, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}
