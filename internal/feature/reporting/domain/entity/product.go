package entity

// Product represents a sellable item that orders reference.
type Product struct {
	// ProductID is the unique identifier for the product.
	ProductID uint `gorm:"primaryKey" json:"productId"`

	Description string `gorm:"size:255" json:"description"`

	// Price is an integer amount with no minor-unit handling.
	Price   int `json:"price"`
	InStock int `json:"inStock"`

	// OrdersReceived is a denormalized counter maintained by the system that
	// writes orders. It is read as stored and may lag behind the actual
	// order rows; this service does not recompute or enforce it.
	OrdersReceived int `json:"ordersReceived"`

	// Orders is a back-reference only, never serialized with the product.
	Orders []Order `gorm:"foreignKey:ProductID" json:"-"`
}
