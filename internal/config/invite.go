package config

import (
	"fmt"
	"net/url"
)

// InviteConfig holds invite issuance settings.
type InviteConfig struct {
	// BaseURL prefixes shareable invite links.
	BaseURL string
	// TokenLength is the number of characters in a generated token.
	TokenLength int
	// MaxAttempts bounds token generation on collision.
	MaxAttempts int
}

// LoadInviteConfigFromEnv loads invite configuration from environment variables.
func LoadInviteConfigFromEnv() InviteConfig {
	return InviteConfig{
		BaseURL:     GetEnv("INVITE_BASE_URL", "http://localhost:8080"),
		TokenLength: GetEnvInt("INVITE_TOKEN_LENGTH", 10),
		MaxAttempts: GetEnvInt("INVITE_MAX_ATTEMPTS", 5),
	}
}

// Validate validates invite configuration.
func (c InviteConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid INVITE_BASE_URL: %q (must be an absolute URL)", c.BaseURL)
	}
	if c.TokenLength < 6 || c.TokenLength > 32 {
		return fmt.Errorf("INVITE_TOKEN_LENGTH must be between 6 and 32, got %d", c.TokenLength)
	}
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("INVITE_MAX_ATTEMPTS must be greater than 0")
	}
	return nil
}
