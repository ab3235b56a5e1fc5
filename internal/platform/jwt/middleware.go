package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys for the authenticated identity extracted from the token.
// The reporting handlers are identity-agnostic; these exist for logging
// and future row-level needs.
const (
	ContextUserID      = "userID"
	ContextEmail       = "email"
	ContextDisplayName = "displayName"
)

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated requests. It verifies the signature
// against the configured key and requires the configured issuer and
// audience plus an unexpired lifetime. Any failure rejects with 401; there
// is no partial pass.
func AuthRequired(cfg Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if cfg.Secret == "" {
			// Server misconfiguration, not a caller error.
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr,
			func(t *jwt.Token) (interface{}, error) {
				// Only HMAC signatures are accepted.
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(cfg.Secret), nil
			},
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithIssuedAt(),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// Expose the identity claims to downstream handlers.
		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if v, ok := claims["UserId"].(string); ok {
				c.Set(ContextUserID, v)
			}
			if v, ok := claims["Email"].(string); ok {
				c.Set(ContextEmail, v)
			}
			if v, ok := claims["DisplayName"].(string); ok {
				c.Set(ContextDisplayName, v)
			}
		}

		c.Next()
	}
}
