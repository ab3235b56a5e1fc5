// Package usecase implements the business logic for the token feature.
package usecase

import "errors"

var (
	// ErrInvalidRequest is returned when the email or password is empty.
	ErrInvalidRequest = errors.New("email and password must be provided")

	// ErrInvalidCredentials is returned for any failed credential match.
	// Unknown email and wrong password produce this same error so callers
	// cannot enumerate registered accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrCredentialNotFound is returned by the repository when no credential
	// matches the given email.
	ErrCredentialNotFound = errors.New("credential not found")
)
