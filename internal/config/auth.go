package config

import "fmt"

// minSecretLength is the shortest HS256 secret accepted.
const minSecretLength = 32

// AuthConfig holds bearer token verification settings.
type AuthConfig struct {
	// JWTSecret is the HMAC key access tokens are signed with.
	JWTSecret string
	// Issuer is the expected "iss" claim. Empty disables the check.
	Issuer string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret: GetEnv("AUTH_JWT_SECRET", ""),
		Issuer:    GetEnv("AUTH_JWT_ISSUER", ""),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	if len(c.JWTSecret) < minSecretLength {
		return fmt.Errorf("AUTH_JWT_SECRET must be at least %d characters", minSecretLength)
	}
	return nil
}
