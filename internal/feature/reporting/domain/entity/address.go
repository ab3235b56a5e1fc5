package entity

// Address holds a user's shipping and billing location. It is owned by
// exactly one user.
type Address struct {
	AddressID       uint   `gorm:"primaryKey" json:"addressId"`
	UserID          uint   `gorm:"index" json:"-"`
	ShippingAddress string `json:"shippingAddress"`
	BillingAddress  string `json:"billingAddress"`
	City            string `gorm:"size:64" json:"city"`
	State           string `gorm:"size:64" json:"state"`
}
