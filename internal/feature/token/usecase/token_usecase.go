package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"reporting_backend/internal/feature/token/domain/entity"
)

// CredentialRepository abstracts the persistence layer for credential records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CredentialRepository interface {
	// FindByEmail retrieves the credential matching the given email address.
	// It returns ErrCredentialNotFound if no credential exists.
	FindByEmail(ctx context.Context, email string) (*entity.Credential, error)
}

// TokenIssuer signs bearer tokens carrying the matched user's claims.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenIssuer interface {
	// GenerateToken creates a signed token for the given identity and returns
	// it with its expiry timestamp.
	GenerateToken(userID uint, displayName, userName, email string) (string, time.Time, error)
}

// tokenUsecase implements credential verification and token issuance.
type tokenUsecase struct {
	credentials CredentialRepository
	issuer      TokenIssuer
}

// NewTokenUsecase creates a new instance of tokenUsecase.
func NewTokenUsecase(credentials CredentialRepository, issuer TokenIssuer) *tokenUsecase {
	return &tokenUsecase{credentials: credentials, issuer: issuer}
}

// dummyHash keeps bcrypt comparison running even when no credential matches
// the email, so lookup misses and password mismatches take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// IssueToken validates the credentials and returns a signed bearer token
// with its expiry. Both failure modes (unknown email, wrong password) return
// ErrInvalidCredentials with no distinction.
func (u *tokenUsecase) IssueToken(ctx context.Context, email, password string) (string, time.Time, error) {
	if email == "" || password == "" {
		return "", time.Time{}, ErrInvalidRequest
	}

	cred, err := u.credentials.FindByEmail(ctx, email)

	hash := dummyHash
	if err == nil {
		hash = cred.PasswordHash
	}

	// Always run the comparison, even on a lookup miss.
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil || compareErr != nil {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := u.issuer.GenerateToken(cred.UserID, cred.DisplayName, cred.UserName, cred.Email)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, expiresAt, nil
}
