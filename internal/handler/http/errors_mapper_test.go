package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "wrapped validation error",
			err:         fmt.Errorf("error during document validation before saving: %w", validators.ErrInvalidEmail),
			wantStatus:  http.StatusForbidden,
			wantMessage: "Invalid email address",
		},
		{
			name:        "wrapped store conflict",
			err:         fmt.Errorf("user creation failed: %w", store.ErrUserAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: "User with email already exists",
		},
		{
			name:        "expired token",
			err:         service.ErrTokenIsExpired,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Invalid or expired token",
		},
		{
			name:        "first mapping wins",
			err:         errors.Join(ErrInvalidJSON, store.ErrDocumentNotFound),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection reset"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := statusFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, msg)
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	writeError(rr, req, fmt.Errorf("query failed: %w", errors.New("pq: password authentication failed")))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "pq:")
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, rr.Body.String())
}
