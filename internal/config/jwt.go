package config

import "fmt"

// JWTConfig holds the shared secret for service tokens. Auth is disabled when
// Secret is empty.
type JWTConfig struct {
	Secret          string `mapstructure:"jwt-secret"`
	ExpirationHours int    `mapstructure:"expiration-hours"`
}

// minSecretLength is the shortest HMAC secret accepted
const minSecretLength = 16

// Enabled reports whether requests must carry a bearer token
func (c *JWTConfig) Enabled() bool {
	return c.Secret != ""
}

func (c *JWTConfig) normalize() error {
	if len(c.Secret) < minSecretLength {
		return fmt.Errorf("auth.jwt-secret must be at least %d characters", minSecretLength)
	}
	if c.ExpirationHours < 1 {
		return fmt.Errorf("auth.expiration-hours must be at least 1 hour, got: %d", c.ExpirationHours)
	}
	return nil
}
