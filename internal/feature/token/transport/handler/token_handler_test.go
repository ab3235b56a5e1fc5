package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"reporting_backend/internal/feature/token/usecase"
)

// mockTokenUsecase is a mock implementation of the TokenUsecase interface.
type mockTokenUsecase struct {
	IssueTokenFunc func(ctx context.Context, email, password string) (string, time.Time, error)
}

func (m *mockTokenUsecase) IssueToken(ctx context.Context, email, password string) (string, time.Time, error) {
	if m.IssueTokenFunc != nil {
		return m.IssueTokenFunc(ctx, email, password)
	}
	return "", time.Time{}, usecase.ErrInvalidCredentials
}

func TestTokenHandler_Issue(t *testing.T) {
	gin.SetMode(gin.TestMode)

	expires := time.Date(2025, 1, 1, 12, 10, 0, 0, time.UTC)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockIssueFunc  func(ctx context.Context, email, password string) (string, time.Time, error)
		expectedStatus int
		checkBody      func(t *testing.T, body gin.H)
	}{
		{
			name:        "success: valid credentials",
			requestBody: gin.H{"email": "john@abc.com", "password": "correct"},
			mockIssueFunc: func(ctx context.Context, email, password string) (string, time.Time, error) {
				assert.Equal(t, "john@abc.com", email)
				assert.Equal(t, "correct", password)
				return "signed-token", expires, nil
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body gin.H) {
				assert.Equal(t, "signed-token", body["token"])
				assert.Equal(t, "2025-01-01T12:10:00Z", body["expires"])
			},
		},
		{
			name:           "failure: missing email",
			requestBody:    gin.H{"password": "correct"},
			mockIssueFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: missing password",
			requestBody:    gin.H{"email": "john@abc.com"},
			mockIssueFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "failure: malformed email",
			requestBody:    gin.H{"email": "not-an-email", "password": "correct"},
			mockIssueFunc:  nil, // Usecase is not called
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: invalid credentials",
			requestBody: gin.H{"email": "john@abc.com", "password": "wrong"},
			mockIssueFunc: func(ctx context.Context, email, password string) (string, time.Time, error) {
				return "", time.Time{}, usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			checkBody: func(t *testing.T, body gin.H) {
				// The message must not reveal which field was wrong.
				assert.Equal(t, "invalid credentials", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUC := &mockTokenUsecase{IssueTokenFunc: tt.mockIssueFunc}
			handler := NewTokenHandler(mockUC)

			router := gin.New()
			router.POST("/token", handler.Issue)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/token", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.checkBody != nil {
				var responseBody gin.H
				err := json.Unmarshal(w.Body.Bytes(), &responseBody)
				assert.NoError(t, err)
				tt.checkBody(t, responseBody)
			}
		})
	}
}
