// Package handler provides the HTTP handlers for the reporting feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"reporting_backend/internal/api"
	"reporting_backend/internal/feature/reporting/domain/entity"
	"reporting_backend/internal/feature/reporting/usecase"
)

// dateLayout is the ISO date format accepted by the export query parameters.
const dateLayout = "2006-01-02"

// ReportingUsecase defines the report operations consumed by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReportingUsecase interface {
	GetUserSummary(ctx context.Context) ([]entity.User, error)
	GetTopProducts(ctx context.Context) ([]entity.Product, error)
	ExportOrdersAsCSV(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error)
}

// ReportingHandler handles HTTP requests for the report endpoints.
// Validation happens here, before the usecase runs; usecase failures are
// logged in full and translated to generic messages.
type ReportingHandler struct {
	reports ReportingUsecase
}

// NewReportingHandler creates a new instance of ReportingHandler.
func NewReportingHandler(reports ReportingUsecase) *ReportingHandler {
	return &ReportingHandler{reports: reports}
}

// UserSummary handles GET /reporting/user-summary.
// Returns every user with the address inlined; order back-references are
// never serialized.
func (h *ReportingHandler) UserSummary(c *gin.Context) {
	users, err := h.reports.GetUserSummary(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch user summary", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "an error occurred while fetching user summary"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// TopProducts handles GET /reporting/top-products.
// Returns products sorted descending by orders received.
func (h *ReportingHandler) TopProducts(c *gin.Context) {
	products, err := h.reports.GetTopProducts(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch top products", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "an error occurred while fetching top products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// ExportCSV handles GET /reporting/export-csv?startDate=&endDate=.
// Both query parameters are optional ISO dates; an unparsable date or an
// inverted range is a caller error and never reaches the engine.
func (h *ReportingHandler) ExportCSV(c *gin.Context) {
	start, err := parseDateParam(c, "startDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	end, err := parseDateParam(c, "endDate")
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}
	if start != nil && end != nil && start.After(*end) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "startDate cannot be greater than endDate"})
		return
	}

	file, err := h.reports.ExportOrdersAsCSV(c.Request.Context(), start, end)
	if err != nil {
		if errors.Is(err, usecase.ErrDataIntegrity) {
			// Store corruption, not a caller error. Log everything, say little.
			slog.Error("csv export aborted on integrity fault", "error", err, "start", start, "end", end)
		} else {
			slog.Error("failed to export csv report", "error", err)
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "an error occurred while exporting csv report"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}

// parseDateParam reads an optional ISO date query parameter.
// An absent or empty parameter yields nil; a present but malformed one is an error.
func parseDateParam(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: expected YYYY-MM-DD", name)
	}
	return &t, nil
}
