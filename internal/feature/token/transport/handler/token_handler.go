// Package handler provides the HTTP handlers for the token feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reporting_backend/internal/api"
	"reporting_backend/internal/feature/token/usecase"
)

// TokenUsecase defines the issuance operation consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type TokenUsecase interface {
	// IssueToken validates the credentials and returns a signed bearer token
	// with its expiry timestamp.
	IssueToken(ctx context.Context, email, password string) (string, time.Time, error)
}

// TokenHandler handles HTTP requests for token issuance.
type TokenHandler struct {
	tokens TokenUsecase
}

// NewTokenHandler creates a new instance of TokenHandler.
func NewTokenHandler(tokens TokenUsecase) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Issue handles the POST /token endpoint.
// - Binds the request JSON and rejects missing fields with 400.
// - Rejects failed credential matches with a uniform 401; the response
//   never says whether the email or the password was wrong.
// - On success returns the signed token and its expiry.
func (h *TokenHandler) Issue(c *gin.Context) {
	var req api.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("token request validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password must be provided"})
		return
	}

	token, expiresAt, err := h.tokens.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "email and password must be provided"})
			return
		}
		// Do not expose the actual error to prevent user enumeration.
		slog.Warn("token issuance failed", "error", err, "email", req.Email, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid credentials"})
		return
	}

	slog.Info("token issued", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token, Expires: expiresAt})
}
