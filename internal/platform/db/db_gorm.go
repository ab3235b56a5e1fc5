// Package db opens the GORM connection to the report store.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gmysql "gorm.io/driver/mysql"
	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	reportentity "reporting_backend/internal/feature/reporting/domain/entity"
	tokenentity "reporting_backend/internal/feature/token/domain/entity"
)

// OpenDB connects to the backing store. MySQL is the default; set
// DB_DRIVER=postgres to go through the Postgres driver instead. The
// connection is retried for up to a minute so the service survives a store
// that comes up slower than it does.
func OpenDB() *gorm.DB {
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASSWORD")
	name := os.Getenv("DB_NAME")
	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")

	var dial gorm.Dialector
	if os.Getenv("DB_DRIVER") == "postgres" {
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			host, user, pass, name, port)
		dial = gpostgres.Open(dsn)
	} else {
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=Local",
			user, pass, host, port, name)
		dial = gmysql.Open(dsn)
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, &gorm.Config{})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	// The report tables are owned by the system that writes them; migration
	// is opt-in for local and demo environments only.
	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&reportentity.User{},
			&reportentity.Address{},
			&reportentity.Product{},
			&reportentity.Order{},
			&tokenentity.Credential{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
