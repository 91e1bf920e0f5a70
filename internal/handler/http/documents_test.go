// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDocument(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "created",
			body:        `{"title":"Notes","content":"body","access":"private"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Document successfully created",
		},
		{
			name:        "missing content",
			body:        `{"title":"Notes","access":"private"}`,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Some Fields are missing",
		},
		{
			name:        "blank title",
			body:        `{"title":"  ","content":"body","access":"public"}`,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Some Fields are missing",
		},
		{
			name:        "unknown access",
			body:        `{"title":"Notes","content":"body","access":"shared"}`,
			serviceErr:  validators.ErrInvalidAccess,
			wantStatus:  http.StatusForbidden,
			wantMessage: "Access must be either public or private",
		},
		{
			name:        "duplicate title",
			body:        `{"title":"Notes","content":"body","access":"public"}`,
			serviceErr:  store.ErrDocumentAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantMessage: "Document with title already exists",
		},
		{
			name:        "malformed json",
			body:        `{"title":`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid JSON was passed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DocumentService = &mockDocumentService{
				createFn: func(_ context.Context, requester models.Claims, doc models.Document) (models.Document, error) {
					assert.Equal(t, userClaims, requester)
					if tt.serviceErr != nil {
						return models.Document{}, tt.serviceErr
					}
					doc.ID = 11
					doc.OwnerID = requester.UserID
					return doc, nil
				},
			}

			rr := do(t, newTestRouter(t, svcs), http.MethodPost, "/api/documents", tt.body, userToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, message(t, rr))
			if tt.wantStatus == http.StatusOK {
				got := decode[models.DocumentResponse](t, rr)
				assert.Equal(t, int64(11), got.Document.ID)
				assert.Equal(t, int64(5), got.Document.OwnerID)
				assert.Equal(t, models.AccessPrivate, got.Document.Access)
			}
		})
	}
}

func TestCreateDocument_RequiresToken(t *testing.T) {
	rr := do(t, newTestRouter(t, newTestServices()), http.MethodPost, "/api/documents", `{"title":"a"}`, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Token required to access this route", message(t, rr))
}

func TestListDocuments_Paginated(t *testing.T) {
	published := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svcs := newTestServices()
	svcs.DocumentService = &mockDocumentService{
		listFn: func(_ context.Context, requester models.Claims, page models.PageRequest) (models.DocumentPage, error) {
			assert.Equal(t, userClaims, requester)
			assert.Equal(t, models.PageRequest{Offset: 1, Limit: 10}, page)
			return models.DocumentPage{
				Documents: []models.Document{
					{ID: 2, Title: "b", Access: models.AccessPrivate, OwnerID: 5, CreatedAt: published},
					{ID: 1, Title: "a", Access: models.AccessPublic, OwnerID: 9},
				},
				Pagination: models.NewPagination(page, 19),
			}, nil
		},
	}

	rr := do(t, newTestRouter(t, svcs), http.MethodGet, "/api/documents", "", userToken)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.DocumentsResponse](t, rr)
	require.Len(t, got.Documents, 2)
	assert.True(t, published.Equal(got.Documents[0].Published))
	require.NotNil(t, got.Pagination)
	assert.Equal(t, models.Pagination{Page: 1, PageCount: 2, PageSize: 10, TotalCount: 19}, *got.Pagination)
}

func TestListDocuments_EmptyIsArray(t *testing.T) {
	rr := do(t, newTestRouter(t, newTestServices()), http.MethodGet, "/api/documents", "", userToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"documents":[]`)
}

func TestGetDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "visible", wantStatus: http.StatusOK},
		{name: "private", serviceErr: policy.ErrDocumentIsPrivate, wantStatus: http.StatusForbidden, wantMessage: "This Document is Private"},
		{name: "missing", serviceErr: policy.ErrDocumentNotFound, wantStatus: http.StatusNotFound, wantMessage: "Document Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DocumentService = &mockDocumentService{
				getFn: func(_ context.Context, _ models.Claims, id int64) (models.Document, error) {
					if tt.serviceErr != nil {
						return models.Document{}, tt.serviceErr
					}
					return models.Document{ID: id, Title: "a", Access: models.AccessPublic}, nil
				},
			}

			rr := do(t, newTestRouter(t, svcs), http.MethodGet, "/api/documents/3", "", userToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, message(t, rr))
				return
			}
			got := decode[models.DocumentResponse](t, rr)
			assert.Equal(t, int64(3), got.Document.ID)
			assert.Empty(t, got.Message)
		})
	}
}

func TestUpdateDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "updated", wantStatus: http.StatusOK, wantMessage: "Document successfully updated"},
		{name: "not owner", serviceErr: policy.ErrNotDocumentOwner, wantStatus: http.StatusForbidden, wantMessage: "You can only make changes to your document"},
		{name: "missing", serviceErr: policy.ErrDocumentToChangeNotFound, wantStatus: http.StatusNotFound, wantMessage: "Document not found"},
		{name: "empty update", serviceErr: validators.ErrNoFieldsToUpdate, wantStatus: http.StatusForbidden, wantMessage: "No fields to update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DocumentService = &mockDocumentService{
				updateFn: func(_ context.Context, _ models.Claims, id int64, update models.DocumentUpdate) (models.Document, error) {
					if tt.serviceErr != nil {
						return models.Document{}, tt.serviceErr
					}
					require.NotNil(t, update.Content)
					assert.Nil(t, update.Title)
					return models.Document{ID: id, Content: *update.Content}, nil
				},
			}

			rr := do(t, newTestRouter(t, svcs), http.MethodPut, "/api/documents/3", `{"content":"new"}`, userToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, message(t, rr))
		})
	}
}

func TestDeleteDocument(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantStatus  int
		wantMessage string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantMessage: "Document successfully deleted"},
		{name: "not owner", serviceErr: policy.ErrNotDocumentOwner, wantStatus: http.StatusForbidden, wantMessage: "You can only make changes to your document"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.DocumentService = &mockDocumentService{
				deleteFn: func(context.Context, models.Claims, int64) error { return tt.serviceErr },
			}

			rr := do(t, newTestRouter(t, svcs), http.MethodDelete, "/api/documents/3", "", userToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, message(t, rr))
		})
	}
}

func TestSearchDocuments(t *testing.T) {
	var gotQuery string
	svcs := newTestServices()
	svcs.DocumentService = &mockDocumentService{
		searchFn: func(_ context.Context, _ models.Claims, query string) ([]models.Document, error) {
			gotQuery = query
			return []models.Document{{ID: 4, Title: "quarterly report", Access: models.AccessPublic}}, nil
		},
	}

	rr := do(t, newTestRouter(t, svcs), http.MethodGet, "/api/search/documents?q=%20report%20", "", userToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "report", gotQuery)
	got := decode[models.DocumentsResponse](t, rr)
	require.Len(t, got.Documents, 1)
	assert.Nil(t, got.Pagination)
}
