package http

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

type mockTokenService struct {
	issueFn  func(ctx context.Context, user models.User) (models.Token, error)
	verifyFn func(ctx context.Context, tokenString string) (models.Claims, error)
}

func (m *mockTokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, user)
	}
	return models.Token{}, nil
}

func (m *mockTokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(ctx, tokenString)
	}
	return models.Claims{}, nil
}

type mockAuthService struct {
	registerFn func(ctx context.Context, user models.User) (models.User, models.Token, error)
	loginFn    func(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, models.Token, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, user)
	}
	return user, models.Token{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{}, models.Token{}, nil
}

type mockUserService struct {
	listFn    func(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	getFn     func(ctx context.Context, requester models.Claims, id int64) (models.User, error)
	updateFn  func(ctx context.Context, requester models.Claims, id int64, update models.UserUpdate) (models.User, error)
	deleteFn  func(ctx context.Context, requester models.Claims, id int64) error
	isAdminFn func(ctx context.Context, requester models.Claims) (bool, error)
}

func (m *mockUserService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return models.UserPage{}, nil
}

func (m *mockUserService) GetUser(ctx context.Context, requester models.Claims, id int64) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, requester, id)
	}
	return models.User{}, nil
}

func (m *mockUserService) UpdateUser(ctx context.Context, requester models.Claims, id int64, update models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, requester, id, update)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteUser(ctx context.Context, requester models.Claims, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, requester, id)
	}
	return nil
}

// IsAdmin treats role id 1 as admin unless overridden.
func (m *mockUserService) IsAdmin(ctx context.Context, requester models.Claims) (bool, error) {
	if m.isAdminFn != nil {
		return m.isAdminFn(ctx, requester)
	}
	return requester.RoleID == 1, nil
}

type mockRoleService struct {
	createFn func(ctx context.Context, role models.Role) (models.Role, error)
	listFn   func(ctx context.Context, page models.PageRequest) (models.RolePage, error)
	getFn    func(ctx context.Context, id int64) (models.Role, error)
	updateFn func(ctx context.Context, id int64, title string) (models.Role, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockRoleService) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	if m.createFn != nil {
		return m.createFn(ctx, role)
	}
	return role, nil
}

func (m *mockRoleService) ListRoles(ctx context.Context, page models.PageRequest) (models.RolePage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, page)
	}
	return models.RolePage{}, nil
}

func (m *mockRoleService) GetRole(ctx context.Context, id int64) (models.Role, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Role{}, nil
}

func (m *mockRoleService) UpdateRole(ctx context.Context, id int64, title string) (models.Role, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title)
	}
	return models.Role{ID: id, Title: title}, nil
}

func (m *mockRoleService) DeleteRole(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockDocumentService struct {
	createFn     func(ctx context.Context, requester models.Claims, doc models.Document) (models.Document, error)
	listFn       func(ctx context.Context, requester models.Claims, page models.PageRequest) (models.DocumentPage, error)
	getFn        func(ctx context.Context, requester models.Claims, id int64) (models.Document, error)
	updateFn     func(ctx context.Context, requester models.Claims, id int64, update models.DocumentUpdate) (models.Document, error)
	deleteFn     func(ctx context.Context, requester models.Claims, id int64) error
	listByUserFn func(ctx context.Context, requester models.Claims, ownerID int64) ([]models.Document, error)
	searchFn     func(ctx context.Context, requester models.Claims, query string) ([]models.Document, error)
}

func (m *mockDocumentService) CreateDocument(ctx context.Context, requester models.Claims, doc models.Document) (models.Document, error) {
	if m.createFn != nil {
		return m.createFn(ctx, requester, doc)
	}
	return doc, nil
}

func (m *mockDocumentService) ListDocuments(ctx context.Context, requester models.Claims, page models.PageRequest) (models.DocumentPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, requester, page)
	}
	return models.DocumentPage{}, nil
}

func (m *mockDocumentService) GetDocument(ctx context.Context, requester models.Claims, id int64) (models.Document, error) {
	if m.getFn != nil {
		return m.getFn(ctx, requester, id)
	}
	return models.Document{}, nil
}

func (m *mockDocumentService) UpdateDocument(ctx context.Context, requester models.Claims, id int64, update models.DocumentUpdate) (models.Document, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, requester, id, update)
	}
	return models.Document{}, nil
}

func (m *mockDocumentService) DeleteDocument(ctx context.Context, requester models.Claims, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, requester, id)
	}
	return nil
}

func (m *mockDocumentService) ListUserDocuments(ctx context.Context, requester models.Claims, ownerID int64) ([]models.Document, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, requester, ownerID)
	}
	return nil, nil
}

func (m *mockDocumentService) SearchDocuments(ctx context.Context, requester models.Claims, query string) ([]models.Document, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, requester, query)
	}
	return nil, nil
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
