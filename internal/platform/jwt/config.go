// Package jwtmw provides bearer-token issuance and the Gin verification
// middleware guarding the reporting endpoints.
package jwtmw

import (
	"errors"
	"os"
	"time"
)

// Environment variable names for token configuration.
const (
	EnvKeyJWTSecret   = "JWT_SECRET"
	EnvKeyJWTIssuer   = "JWT_ISSUER"
	EnvKeyJWTAudience = "JWT_AUDIENCE"
	EnvKeyJWTSubject  = "JWT_SUBJECT"
)

// TokenLifetime is the fixed lifetime of every issued token. There is no
// refresh mechanism; clients re-authenticate after expiry.
const TokenLifetime = 10 * time.Minute

// Config holds the signing key and the issuer/audience/subject strings
// shared by the issuer and the verification middleware.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
	Subject  string
	Lifetime time.Duration
}

// LoadConfig loads token configuration from environment variables.
func LoadConfig() Config {
	return Config{
		Secret:   os.Getenv(EnvKeyJWTSecret),
		Issuer:   os.Getenv(EnvKeyJWTIssuer),
		Audience: os.Getenv(EnvKeyJWTAudience),
		Subject:  os.Getenv(EnvKeyJWTSubject),
		Lifetime: TokenLifetime,
	}
}

// Validate reports whether the configuration can sign tokens. A missing
// secret is a startup failure, not a per-request error.
func (c Config) Validate() error {
	if c.Secret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return nil
}
