package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers_AdminGetsPage(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		listFn: func(_ context.Context, page models.PageRequest) (models.UserPage, error) {
			assert.Equal(t, models.PageRequest{Offset: 2, Limit: 5}, page)
			return models.UserPage{
				Users:      []models.User{{ID: 3, Email: "a@example.com", Password: "$2a$hash", RoleID: 2, CreatedAt: created}},
				Pagination: models.NewPagination(page, 19),
			}, nil
		},
	}

	rr := do(t, newTestRouter(t, svcs), http.MethodGet, "/api/users?offset=2&limit=5", "", adminToken)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
	got := decode[models.UsersResponse](t, rr)
	require.Len(t, got.Users, 1)
	assert.Equal(t, int64(3), got.Users[0].ID)
	assert.Equal(t, "a@example.com", got.Users[0].Email)
	assert.True(t, created.Equal(got.Users[0].CreatedAt))
	assert.Equal(t, models.Pagination{Page: 2, PageCount: 2, PageSize: 5, TotalCount: 19}, got.Pagination)
}

func TestListUsers_RegularUserForbidden(t *testing.T) {
	rr := do(t, newTestRouter(t, newTestServices()), http.MethodGet, "/api/users", "", userToken)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestGetUser(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		serviceErr error
		wantStatus int
	}{
		{name: "found", path: "/api/users/5", wantStatus: http.StatusOK},
		{name: "denied", path: "/api/users/6", serviceErr: policy.ErrUserAccessDenied, wantStatus: http.StatusForbidden},
		{name: "missing", path: "/api/users/404", serviceErr: policy.ErrUserNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid id", path: "/api/users/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &mockUserService{
				getFn: func(_ context.Context, requester models.Claims, id int64) (models.User, error) {
					assert.Equal(t, userClaims, requester)
					if tt.serviceErr != nil {
						return models.User{}, tt.serviceErr
					}
					return models.User{ID: id, Email: "ada@example.com", Password: "$2a$hash"}, nil
				},
			}

			rr := do(t, newTestRouter(t, svcs), http.MethodGet, tt.path, "", userToken)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				got := decode[models.UserDetails](t, rr)
				assert.Equal(t, int64(5), got.ID)
				assert.NotContains(t, rr.Body.String(), "$2a$hash")
			}
		})
	}
}

func TestUpdateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svcs := newTestServices()
		svcs.UserService = &mockUserService{
			updateFn: func(_ context.Context, _ models.Claims, id int64, update models.UserUpdate) (models.User, error) {
				require.NotNil(t, update.FirstName)
				assert.Equal(t, "Augusta", *update.FirstName)
				assert.Nil(t, update.Email)
				return models.User{ID: id}, nil
			},
		}

		rr := do(t, newTestRouter(t, svcs), http.MethodPut, "/api/users/5", `{"firstname":"Augusta"}`, userToken)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "User successfully Updated", message(t, rr))
	})

	t.Run("role change by non-admin", func(t *testing.T) {
		svcs := newTestServices()
		svcs.UserService = &mockUserService{
			updateFn: func(context.Context, models.Claims, int64, models.UserUpdate) (models.User, error) {
				return models.User{}, service.ErrRoleChangeForbidden
			},
		}

		rr := do(t, newTestRouter(t, svcs), http.MethodPut, "/api/users/5", `{"roleId":1}`, userToken)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("wrong field type", func(t *testing.T) {
		rr := do(t, newTestRouter(t, newTestServices()), http.MethodPut, "/api/users/5", `{"roleId":"admin"}`, userToken)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	deleted := int64(0)
	svcs := newTestServices()
	svcs.UserService = &mockUserService{
		deleteFn: func(_ context.Context, _ models.Claims, id int64) error {
			deleted = id
			return nil
		},
	}

	rr := do(t, newTestRouter(t, svcs), http.MethodDelete, "/api/users/5", "", userToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User successfully deleted", message(t, rr))
	assert.Equal(t, int64(5), deleted)
}

func TestUserDocuments(t *testing.T) {
	svcs := newTestServices()
	svcs.DocumentService = &mockDocumentService{
		listByUserFn: func(_ context.Context, requester models.Claims, ownerID int64) ([]models.Document, error) {
			assert.Equal(t, userClaims, requester)
			assert.Equal(t, int64(9), ownerID)
			return []models.Document{{ID: 1, Title: "t", Access: models.AccessPublic, OwnerID: 9}}, nil
		},
	}

	rr := do(t, newTestRouter(t, svcs), http.MethodGet, "/api/users/9/documents", "", userToken)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decode[models.DocumentsResponse](t, rr)
	require.Len(t, got.Documents, 1)
	assert.Equal(t, int64(9), got.Documents[0].OwnerID)
	assert.Nil(t, got.Pagination)
}
