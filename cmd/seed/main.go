// Command seed loads a demo data set into the report store: two users with
// addresses, three products, a handful of orders, and a bcrypt-hashed login
// credential. Intended for local and demo environments; production report
// tables are populated by the upstream system.
package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm/clause"

	reportentity "reporting_backend/internal/feature/reporting/domain/entity"
	tokenentity "reporting_backend/internal/feature/token/domain/entity"
	infradb "reporting_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		log.Fatal("SEED_PASSWORD must be set; refusing to seed a default credential")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash seed password: %v", err)
	}

	db := infradb.OpenDB()

	users := []reportentity.User{
		{
			UserID:   1,
			UserName: "John Doe",
			Contact:  7894561238,
			Email:    "john@abc.com",
			Gender:   "Male",
			DOB:      time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			UserID:   2,
			UserName: "Jane Roe",
			Contact:  7894561239,
			Email:    "jane@abc.com",
			Gender:   "Female",
			DOB:      time.Date(1995, 6, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	addresses := []reportentity.Address{
		{AddressID: 1, UserID: 1, ShippingAddress: "123 Main St", BillingAddress: "123 Main St", City: "New York", State: "Washington"},
		{AddressID: 2, UserID: 2, ShippingAddress: "45 Oak Ave", BillingAddress: "45 Oak Ave", City: "Seattle", State: "Washington"},
	}

	products := []reportentity.Product{
		{ProductID: 1, Description: "Product A", Price: 100, InStock: 10, OrdersReceived: 10},
		{ProductID: 2, Description: "Product B", Price: 200, InStock: 15, OrdersReceived: 20},
		{ProductID: 3, Description: "Product C", Price: 50, InStock: 3, OrdersReceived: 20},
	}

	orders := []reportentity.Order{
		{OrderID: 1, UserID: 1, ProductID: 1, QtyOrdered: 2, PurchaseDate: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{OrderID: 2, UserID: 1, ProductID: 2, QtyOrdered: 1, PurchaseDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{OrderID: 3, UserID: 2, ProductID: 2, QtyOrdered: 3, PurchaseDate: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)},
	}

	credentials := []tokenentity.Credential{
		{UserID: 1, DisplayName: "John Doe", UserName: "johnd", Email: "john@abc.com", PasswordHash: string(hashed)},
	}

	// 再実行しても安全なように既存行はそのまま残す
	for _, step := range []struct {
		name string
		rows any
	}{
		{"users", &users},
		{"addresses", &addresses},
		{"products", &products},
		{"orders", &orders},
		{"credentials", &credentials},
	} {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(step.rows).Error; err != nil {
			log.Fatalf("failed to seed %s: %v", step.name, err)
		}
	}

	log.Println("seed ok")
}
