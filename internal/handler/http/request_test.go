package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		required []string
		wantErr  error
		wantText string
	}{
		{name: "all present", body: `{"title":"editor"}`, required: validators.CreateRoleFields},
		{name: "no required fields", body: `{}`},
		{name: "missing field names the wanted set", body: `{"email":"a@b.co"}`, required: validators.LoginFields, wantErr: validators.ErrFieldsMissing, wantText: "want email, password"},
		{name: "blank body", body: "  ", required: validators.LoginFields, wantErr: validators.ErrFieldsMissing},
		{name: "not an object", body: `[1,2]`, required: validators.LoginFields, wantErr: ErrInvalidJSON},
		{name: "broken json", body: `{"title":`, wantErr: ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst models.Role
			err := decodeBody(r, &dst, tt.required...)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantText != "" {
				assert.Contains(t, err.Error(), tt.wantText)
			}
		})
	}
}
