package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reporting_backend/internal/feature/reporting/domain/entity"
	"reporting_backend/internal/feature/reporting/usecase"
)

// mockReportingUsecase is a mock implementation of the ReportingUsecase interface.
type mockReportingUsecase struct {
	GetUserSummaryFunc    func(ctx context.Context) ([]entity.User, error)
	GetTopProductsFunc    func(ctx context.Context) ([]entity.Product, error)
	ExportOrdersAsCSVFunc func(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error)
}

func (m *mockReportingUsecase) GetUserSummary(ctx context.Context) ([]entity.User, error) {
	if m.GetUserSummaryFunc != nil {
		return m.GetUserSummaryFunc(ctx)
	}
	return nil, nil
}

func (m *mockReportingUsecase) GetTopProducts(ctx context.Context) ([]entity.Product, error) {
	if m.GetTopProductsFunc != nil {
		return m.GetTopProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReportingUsecase) ExportOrdersAsCSV(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error) {
	if m.ExportOrdersAsCSVFunc != nil {
		return m.ExportOrdersAsCSVFunc(ctx, start, end)
	}
	return nil, errors.New("not implemented")
}

func newTestRouter(uc ReportingUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReportingHandler(uc)
	r := gin.New()
	r.GET("/reporting/user-summary", h.UserSummary)
	r.GET("/reporting/top-products", h.TopProducts)
	r.GET("/reporting/export-csv", h.ExportCSV)
	return r
}

func TestReportingHandler_UserSummary(t *testing.T) {
	t.Run("success: users with inlined address", func(t *testing.T) {
		uc := &mockReportingUsecase{
			GetUserSummaryFunc: func(ctx context.Context) ([]entity.User, error) {
				return []entity.User{
					{UserID: 1, UserName: "John Doe", Address: &entity.Address{AddressID: 1, City: "New York"}},
				}, nil
			},
		}
		router := newTestRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reporting/user-summary", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body, 1)
		assert.Equal(t, "John Doe", body[0]["userName"])

		address, ok := body[0]["address"].(map[string]any)
		require.True(t, ok, "address must be inlined")
		assert.Equal(t, "New York", address["city"])

		// The order back-reference must never appear in the payload.
		_, present := body[0]["orders"]
		assert.False(t, present)
	})

	t.Run("failure: generic message on usecase error", func(t *testing.T) {
		uc := &mockReportingUsecase{
			GetUserSummaryFunc: func(ctx context.Context) ([]entity.User, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		}
		router := newTestRouter(uc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reporting/user-summary", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "dial tcp", "internal detail must not leak")
	})
}

func TestReportingHandler_TopProducts(t *testing.T) {
	uc := &mockReportingUsecase{
		GetTopProductsFunc: func(ctx context.Context) ([]entity.Product, error) {
			return []entity.Product{
				{ProductID: 2, Description: "Product B", OrdersReceived: 20},
				{ProductID: 1, Description: "Product A", OrdersReceived: 10},
			}, nil
		},
	}
	router := newTestRouter(uc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/reporting/top-products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, float64(2), body[0]["productId"])
	assert.Equal(t, float64(1), body[1]["productId"])
}

func TestReportingHandler_ExportCSV(t *testing.T) {
	csvBody := "OrderId,UserId,UserName,ProductId,ProductDescription,Price,QuantityOrdered,PurchaseDate,Region\n" +
		"1,1,John Doe,1,Product A,100,2,2025-01-01,New York\n"

	tests := []struct {
		name           string
		url            string
		mockExport     func(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error)
		expectedStatus int
		check          func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success: no bounds",
			url:  "/reporting/export-csv",
			mockExport: func(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error) {
				assert.Nil(t, start)
				assert.Nil(t, end)
				return &usecase.ReportFile{
					Content:     []byte(csvBody),
					ContentType: "text/csv",
					FileName:    "Order_Report_20250203_040506.csv",
				}, nil
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Equal(t, csvBody, w.Body.String())
				assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
				assert.Equal(t,
					`attachment; filename="Order_Report_20250203_040506.csv"`,
					w.Header().Get("Content-Disposition"))
			},
		},
		{
			name: "success: bounds forwarded inclusively",
			url:  "/reporting/export-csv?startDate=2025-01-01&endDate=2025-01-31",
			mockExport: func(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error) {
				require.NotNil(t, start)
				require.NotNil(t, end)
				assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *start)
				assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), *end)
				return &usecase.ReportFile{Content: []byte(csvBody), ContentType: "text/csv", FileName: "r.csv"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: unparsable start date",
			url:            "/reporting/export-csv?startDate=01-01-2025",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: unparsable end date",
			url:            "/reporting/export-csv?endDate=notadate",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: start after end",
			url:            "/reporting/export-csv?startDate=2025-02-01&endDate=2025-01-01",
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.Contains(t, w.Body.String(), "startDate cannot be greater than endDate")
			},
		},
		{
			name: "failure: integrity fault becomes generic 500",
			url:  "/reporting/export-csv",
			mockExport: func(ctx context.Context, start, end *time.Time) (*usecase.ReportFile, error) {
				return nil, fmt.Errorf("%w: order 7", usecase.ErrDataIntegrity)
			},
			expectedStatus: http.StatusInternalServerError,
			check: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "order 7")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockReportingUsecase{ExportOrdersAsCSVFunc: tt.mockExport}
			router := newTestRouter(uc)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}
