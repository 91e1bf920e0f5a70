package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/mock"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	adminRole   = models.Role{ID: 1, Title: models.AdminRoleTitle}
	regularRole = models.Role{ID: 2, Title: "regular"}

	adminClaims   = models.Claims{UserID: 1, RoleID: 1}
	regularClaims = models.Claims{UserID: 5, RoleID: 2}
)

type userServiceMocks struct {
	users *mock.MockUserRepository
	roles *mock.MockRoleRepository
}

func newTestUserService(t *testing.T) (UserService, userServiceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := userServiceMocks{
		users: mock.NewMockUserRepository(ctrl),
		roles: mock.NewMockRoleRepository(ctrl),
	}
	return NewUserService(m.users, m.roles, logger.Nop()), m
}

func expectRoles(roles *mock.MockRoleRepository) {
	roles.EXPECT().FindRoleByID(gomock.Any(), int64(1)).Return(adminRole, nil).AnyTimes()
	roles.EXPECT().FindRoleByID(gomock.Any(), int64(2)).Return(regularRole, nil).AnyTimes()
}

func TestUserService_ListUsers(t *testing.T) {
	svc, m := newTestUserService(t)
	page := models.NewPageRequest("2", "10")

	m.users.EXPECT().ListUsers(gomock.Any(), page).Return([]models.User{{ID: 11}, {ID: 12}}, nil)
	m.users.EXPECT().CountUsers(gomock.Any()).Return(19, nil)

	got, err := svc.ListUsers(context.Background(), page)

	require.NoError(t, err)
	assert.Len(t, got.Users, 2)
	assert.Equal(t, models.Pagination{Page: 2, PageCount: 2, PageSize: 10, TotalCount: 19}, got.Pagination)
}

func TestUserService_ListUsers_CountFails(t *testing.T) {
	svc, m := newTestUserService(t)

	m.users.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(nil, nil)
	m.users.EXPECT().CountUsers(gomock.Any()).Return(0, store.ErrExecutingQuery)

	_, err := svc.ListUsers(context.Background(), models.NewPageRequest("", ""))

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestUserService_GetUser(t *testing.T) {
	target := models.User{ID: 5, Email: "ada@example.com", RoleID: 2}

	tests := []struct {
		name      string
		requester models.Claims
		id        int64
		found     models.User
		findErr   error
		wantErr   error
	}{
		{name: "self", requester: regularClaims, id: 5, found: target},
		{name: "admin reads anyone", requester: adminClaims, id: 5, found: target},
		{name: "another regular user", requester: models.Claims{UserID: 9, RoleID: 2}, id: 5, found: target, wantErr: policy.ErrUserAccessDenied},
		{name: "missing user", requester: regularClaims, id: 42, findErr: store.ErrUserNotFound, wantErr: policy.ErrUserNotFound},
		{name: "storage failure", requester: regularClaims, id: 5, findErr: store.ErrScanningRow, wantErr: store.ErrScanningRow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestUserService(t)
			expectRoles(m.roles)
			m.users.EXPECT().FindUserByID(gomock.Any(), tt.id).Return(tt.found, tt.findErr)

			got, err := svc.GetUser(context.Background(), tt.requester, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, got)
		})
	}
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, m := newTestUserService(t)
	expectRoles(m.roles)
	password := "new-secret"

	m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)
	m.users.EXPECT().
		UpdateUser(gomock.Any(), int64(5), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u models.UserUpdate) (models.User, error) {
			require.NotNil(t, u.Password)
			assert.NotEqual(t, password, *u.Password)
			assert.NoError(t, utils.CheckPassword(*u.Password, password))
			return models.User{ID: 5, RoleID: 2}, nil
		})

	_, err := svc.UpdateUser(context.Background(), regularClaims, 5, models.UserUpdate{Password: &password})

	require.NoError(t, err)
}

func TestUserService_UpdateUser_RoleChange(t *testing.T) {
	newRole := int64(1)
	sameRole := int64(2)

	t.Run("regular user cannot promote themselves", func(t *testing.T) {
		svc, m := newTestUserService(t)
		expectRoles(m.roles)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)

		_, err := svc.UpdateUser(context.Background(), regularClaims, 5, models.UserUpdate{RoleID: &newRole})

		assert.ErrorIs(t, err, ErrRoleChangeForbidden)
	})

	t.Run("unchanged role is accepted", func(t *testing.T) {
		svc, m := newTestUserService(t)
		expectRoles(m.roles)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)
		m.users.EXPECT().UpdateUser(gomock.Any(), int64(5), models.UserUpdate{RoleID: &sameRole}).Return(models.User{ID: 5, RoleID: 2}, nil)

		_, err := svc.UpdateUser(context.Background(), regularClaims, 5, models.UserUpdate{RoleID: &sameRole})

		require.NoError(t, err)
	})

	t.Run("admin changes any role", func(t *testing.T) {
		svc, m := newTestUserService(t)
		expectRoles(m.roles)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)
		m.users.EXPECT().UpdateUser(gomock.Any(), int64(5), models.UserUpdate{RoleID: &newRole}).Return(models.User{ID: 5, RoleID: 1}, nil)

		got, err := svc.UpdateUser(context.Background(), adminClaims, 5, models.UserUpdate{RoleID: &newRole})

		require.NoError(t, err)
		assert.Equal(t, int64(1), got.RoleID)
	})
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	svc, m := newTestUserService(t)
	expectRoles(m.roles)
	email := "taken@example.com"

	m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)
	m.users.EXPECT().UpdateUser(gomock.Any(), int64(5), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.UpdateUser(context.Background(), regularClaims, 5, models.UserUpdate{Email: &email})

	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		svc, m := newTestUserService(t)
		expectRoles(m.roles)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(5)).Return(models.User{ID: 5, RoleID: 2}, nil)
		m.users.EXPECT().DeleteUser(gomock.Any(), int64(5)).Return(nil)

		require.NoError(t, svc.DeleteUser(context.Background(), regularClaims, 5))
	})

	t.Run("someone else", func(t *testing.T) {
		svc, m := newTestUserService(t)
		expectRoles(m.roles)
		m.users.EXPECT().FindUserByID(gomock.Any(), int64(8)).Return(models.User{ID: 8, RoleID: 2}, nil)

		err := svc.DeleteUser(context.Background(), regularClaims, 8)

		assert.ErrorIs(t, err, policy.ErrUserAccessDenied)
	})
}

func TestUserService_IsAdmin(t *testing.T) {
	svc, m := newTestUserService(t)
	expectRoles(m.roles)
	m.roles.EXPECT().FindRoleByID(gomock.Any(), int64(99)).Return(models.Role{}, store.ErrRoleNotFound)

	isAdmin, err := svc.IsAdmin(context.Background(), adminClaims)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), regularClaims)
	require.NoError(t, err)
	assert.False(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), models.Claims{UserID: 3, RoleID: 99})
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
