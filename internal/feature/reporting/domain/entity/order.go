package entity

import "time"

// Order links a user to a product they purchased. Every order references
// exactly one user and one product; an orphaned foreign key is a
// data-integrity failure upstream of this service.
type Order struct {
	// OrderID is the unique identifier for the order.
	OrderID uint `gorm:"primaryKey" json:"orderId"`

	UserID     uint `gorm:"not null;index" json:"userId"`
	ProductID  uint `gorm:"not null;index" json:"productId"`
	QtyOrdered int  `gorm:"not null" json:"qtyOrdered"`

	// PurchaseDate is stored as provided, with no timezone normalization.
	PurchaseDate time.Time `gorm:"not null" json:"purchaseDate"`

	// User and Product are the joined rows. After a preload, nil means the
	// referenced row is missing, which callers treat as an integrity fault.
	User    *User    `gorm:"foreignKey:UserID;references:UserID" json:"user,omitempty"`
	Product *Product `gorm:"foreignKey:ProductID;references:ProductID" json:"product,omitempty"`
}
