package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"reporting_backend/internal/feature/reporting/domain/entity"
)

// ReportRepository abstracts read access to the report entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ReportRepository interface {
	// ListUsersWithAddress returns all users with their address preloaded,
	// in store order. Users without an address are included with a nil address.
	ListUsersWithAddress(ctx context.Context) ([]entity.User, error)

	// ListProductsByOrdersReceived returns all products ordered by
	// orders_received descending, ties broken by product_id ascending.
	ListProductsByOrdersReceived(ctx context.Context) ([]entity.Product, error)

	// ListOrders returns orders with user, address, and product preloaded,
	// filtered to the inclusive [start, end] purchase-date range.
	// A nil bound imposes no constraint on that side.
	ListOrders(ctx context.Context, start, end *time.Time) ([]entity.Order, error)
}

// ReportFile is a rendered export ready to be served as a download.
type ReportFile struct {
	Content     []byte
	ContentType string
	FileName    string
}

// csvHeader is the fixed column set of the order export. Column names and
// order are part of the contract with downstream report consumers.
var csvHeader = []string{
	"OrderId", "UserId", "UserName", "ProductId", "ProductDescription",
	"Price", "QuantityOrdered", "PurchaseDate", "Region",
}

// reportingUsecase implements the report queries and the CSV export.
type reportingUsecase struct {
	reports ReportRepository

	// now supplies the export timestamp; replaced in tests for a stable filename.
	now func() time.Time
}

// NewReportingUsecase creates a new instance of reportingUsecase.
func NewReportingUsecase(reports ReportRepository) *reportingUsecase {
	return &reportingUsecase{reports: reports, now: time.Now}
}

// GetUserSummary returns all users joined with their address.
// No pagination, no filtering; ordering follows the store.
func (u *reportingUsecase) GetUserSummary(ctx context.Context) ([]entity.User, error) {
	return u.reports.ListUsersWithAddress(ctx)
}

// GetTopProducts returns all products ranked by orders received, descending.
func (u *reportingUsecase) GetTopProducts(ctx context.Context) ([]entity.Product, error) {
	return u.reports.ListProductsByOrdersReceived(ctx)
}

// GetOrders returns orders whose purchase date falls within the inclusive
// [start, end] range. Range direction is validated at the HTTP boundary;
// the engine applies the bounds as given.
func (u *reportingUsecase) GetOrders(ctx context.Context, start, end *time.Time) ([]entity.Order, error) {
	return u.reports.ListOrders(ctx, start, end)
}

// ExportOrdersAsCSV renders the filtered order set as a CSV download.
// Any order missing its joined user, product, or address aborts the whole
// export with ErrDataIntegrity: a partial or garbled CSV is worse than an
// explicit failure.
func (u *reportingUsecase) ExportOrdersAsCSV(ctx context.Context, start, end *time.Time) (*ReportFile, error) {
	orders, err := u.GetOrders(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, o := range orders {
		if o.User == nil || o.Product == nil || o.User.Address == nil {
			return nil, fmt.Errorf("%w: order %d", ErrDataIntegrity, o.OrderID)
		}
		row := []string{
			strconv.FormatUint(uint64(o.OrderID), 10),
			strconv.FormatUint(uint64(o.User.UserID), 10),
			o.User.UserName,
			strconv.FormatUint(uint64(o.Product.ProductID), 10),
			o.Product.Description,
			strconv.Itoa(o.Product.Price),
			strconv.Itoa(o.QtyOrdered),
			o.PurchaseDate.Format("2006-01-02"),
			o.User.Address.City,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render csv: %w", err)
	}

	return &ReportFile{
		Content:     buf.Bytes(),
		ContentType: "text/csv",
		FileName:    fmt.Sprintf("Order_Report_%s.csv", u.now().UTC().Format("20060102_150405")),
	}, nil
}
