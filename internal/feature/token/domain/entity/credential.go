// Package entity defines the domain entities for the token feature.
package entity

import "time"

// Credential is a login record mapped to a report user via shared identity
// fields. Passwords are stored as bcrypt hashes, never plaintext.
type Credential struct {
	ID uint `gorm:"primaryKey"`

	// UserID links the credential to the reporting user it authenticates.
	UserID uint `gorm:"not null;index"`

	DisplayName string `gorm:"size:60"`
	UserName    string `gorm:"size:30"`

	// Email is the login identifier. It must be unique across credentials.
	Email string `gorm:"uniqueIndex;size:50;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `gorm:"size:255;not null"`

	CreatedAt time.Time
}

// TableName maps the entity onto the external credential table.
func (Credential) TableName() string {
	return "credentials"
}
