// Package adapters provides the repository implementations for the token feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"reporting_backend/internal/feature/token/domain/entity"
	"reporting_backend/internal/feature/token/usecase"
)

// credentialMySQL is the MySQL implementation of the CredentialRepository
// interface. The credential table is read-only for this service.
type credentialMySQL struct {
	db *gorm.DB
}

var _ usecase.CredentialRepository = (*credentialMySQL)(nil)

// NewCredentialMySQL creates a new instance of credentialMySQL with the given gorm.DB connection.
func NewCredentialMySQL(db *gorm.DB) *credentialMySQL {
	return &credentialMySQL{db: db}
}

// FindByEmail retrieves the credential for the given email address.
// It returns usecase.ErrCredentialNotFound when no row matches.
func (r *credentialMySQL) FindByEmail(ctx context.Context, email string) (*entity.Credential, error) {
	var cred entity.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCredentialNotFound
		}
		return nil, err
	}
	return &cred, nil
}
