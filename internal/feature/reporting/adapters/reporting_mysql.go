// Package adapters provides the repository implementations for the reporting feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"reporting_backend/internal/feature/reporting/domain/entity"
	"reporting_backend/internal/feature/reporting/usecase"
)

// reportMySQL is the MySQL implementation of the ReportRepository interface.
// All queries are read-only; writes to these tables belong to an external system.
type reportMySQL struct {
	db *gorm.DB
}

var _ usecase.ReportRepository = (*reportMySQL)(nil)

// NewReportMySQL creates a new instance of reportMySQL with the given gorm.DB connection.
func NewReportMySQL(db *gorm.DB) *reportMySQL {
	return &reportMySQL{db: db}
}

// ListUsersWithAddress returns all users with their address preloaded.
// Users with no address row come back with a nil Address, never dropped.
func (r *reportMySQL) ListUsersWithAddress(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// ListProductsByOrdersReceived returns all products ranked by the
// denormalized orders_received counter, descending. Ties are broken by
// product_id ascending so the ranking is deterministic.
func (r *reportMySQL) ListProductsByOrdersReceived(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := r.db.WithContext(ctx).
		Order("orders_received DESC, product_id ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ListOrders returns orders with user, address, and product preloaded,
// filtered to the inclusive [start, end] purchase-date range. A nil bound
// leaves that side unconstrained.
func (r *reportMySQL) ListOrders(ctx context.Context, start, end *time.Time) ([]entity.Order, error) {
	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Address").
		Preload("Product")

	if start != nil {
		q = q.Where("purchase_date >= ?", *start)
	}
	if end != nil {
		q = q.Where("purchase_date <= ?", *end)
	}

	var orders []entity.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
