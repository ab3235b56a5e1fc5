package jwtmw

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// issuer signs bearer tokens with the configured symmetric key.
type issuer struct {
	cfg Config

	// now supplies the issuance time; replaced in tests.
	now func() time.Time
}

// NewIssuer creates a new token issuer from the given configuration.
// The configuration must already be validated; signing with an empty
// secret is rejected at startup, not here.
func NewIssuer(cfg Config) *issuer {
	return &issuer{cfg: cfg, now: time.Now}
}

// GenerateToken creates a signed HS256 token for the matched user and
// returns it with its expiry. The claim set carries the registered claims
// (sub, jti, iat, exp, iss, aud) plus the identity claims the reporting
// endpoints consume.
func (g *issuer) GenerateToken(userID uint, displayName, userName, email string) (string, time.Time, error) {
	now := g.now()
	expiresAt := now.Add(g.cfg.Lifetime)

	claims := jwt.MapClaims{
		"sub": g.cfg.Subject,
		"jti": uuid.NewString(),
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
		"iss": g.cfg.Issuer,
		"aud": g.cfg.Audience,

		"UserId":      strconv.FormatUint(uint64(userID), 10),
		"DisplayName": displayName,
		"UserName":    userName,
		"Email":       email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}
