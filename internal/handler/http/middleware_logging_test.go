package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessLine runs next behind withTraceID and withLogging and returns the
// decoded access log entry.
func accessLine(t *testing.T, req *http.Request, next http.HandlerFunc) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	rr := httptest.NewRecorder()
	h.withTraceID(h.withLogging(next)).ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	return entry, rr
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		target   string
		status   int
		body     string
		wantSize float64
	}{
		{name: "document list", method: http.MethodGet, target: "/api/documents", status: http.StatusOK, body: `{"documents":[]}`, wantSize: 16},
		{name: "role update answers 201", method: http.MethodPut, target: "/api/roles/3", status: http.StatusCreated, body: "{}", wantSize: 2},
		{name: "forbidden without body", method: http.MethodDelete, target: "/api/documents/1", status: http.StatusForbidden},
		{name: "query kept in uri", method: http.MethodGet, target: "/api/search/documents?q=report", status: http.StatusOK, body: "[]", wantSize: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			req.Header.Set(traceIDHeader, "trace-"+tt.method)

			entry, rr := accessLine(t, req, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					_, _ = w.Write([]byte(tt.body))
				}
			})

			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Equal(t, "trace-"+tt.method, entry["trace_id"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_HandlerWritesNothing(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)

	entry, _ := accessLine(t, req, func(http.ResponseWriter, *http.Request) {})

	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, float64(0), entry["size"])
	assert.NotEmpty(t, entry["trace_id"])
}
