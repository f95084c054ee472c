// Package auth verifies bearer access tokens and exposes the caller's
// identity to handlers.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/festy23/league_admission/internal/apperror"
	"github.com/festy23/league_admission/internal/config"
)

const userIDKey = "auth.user_id"

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadScheme     = errors.New("authorization scheme must be Bearer")
	errBadSubject    = errors.New("token subject is not a valid user id")
)

// Verifier validates HS256 access tokens.
type Verifier struct {
	secret []byte
	issuer string
}

// NewVerifier creates a verifier from auth configuration.
func NewVerifier(cfg config.AuthConfig) *Verifier {
	return &Verifier{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer}
}

// Verify parses raw and returns the user id carried in its subject.
func (v *Verifier) Verify(raw string) (int64, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadSubject
	}
	return id, nil
}

// Authenticate rejects requests without a valid bearer token and stores
// the caller's user id on the context.
func Authenticate(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := v.fromHeader(c.GetHeader("Authorization"))
		if err != nil {
			_ = c.Error(apperror.ErrUnauthenticated.Wrap(err))
			c.Abort()
			return
		}
		c.Set(userIDKey, id)
		c.Next()
	}
}

func (v *Verifier) fromHeader(header string) (int64, error) {
	if header == "" {
		return 0, errMissingHeader
	}
	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
		return 0, errBadScheme
	}
	return v.Verify(strings.TrimSpace(raw))
}

// UserID returns the authenticated caller's id.
func UserID(c *gin.Context) (int64, error) {
	id, ok := c.Get(userIDKey)
	if !ok {
		return 0, apperror.ErrUnauthenticated
	}
	userID, ok := id.(int64)
	if !ok || userID <= 0 {
		return 0, apperror.ErrUnauthenticated
	}
	return userID, nil
}

// Signer issues access tokens. It backs tests and local tooling.
type Signer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewSigner creates a signer issuing tokens valid for ttl.
func NewSigner(cfg config.AuthConfig, ttl time.Duration) *Signer {
	return &Signer{secret: []byte(cfg.JWTSecret), issuer: cfg.Issuer, ttl: ttl}
}

// Sign returns a token for userID issued at now.
func (s *Signer) Sign(userID int64, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
