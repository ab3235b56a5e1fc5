// Package entity defines the domain entities for the reporting feature.
package entity

import "time"

// User represents a report subject. Rows are created and maintained by an
// external system; this service only reads them.
type User struct {
	// UserID is the unique identifier for the user.
	UserID uint `gorm:"primaryKey" json:"userId"`

	UserName string    `gorm:"size:60" json:"userName"`
	Contact  int64     `json:"contact"`
	Email    string    `gorm:"size:255" json:"email"`
	Gender   string    `gorm:"size:16" json:"gender"`
	DOB      time.Time `json:"dob"`

	// Address is owned exclusively by this user and has no independent
	// lifecycle. A user without an address row is still a valid user; the
	// pointer is nil in that case and serializes as null.
	Address *Address `gorm:"foreignKey:UserID" json:"address"`

	// Orders is a back-reference only. It is never serialized with the user,
	// which would re-embed the parent through Order.User and cycle forever.
	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}
