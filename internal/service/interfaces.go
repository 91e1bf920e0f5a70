package service

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue signs a token carrying the id and role id of user.
	Issue(ctx context.Context, user models.User) (models.Token, error)
	// Verify checks the signature, issuer and expiry of tokenString and
	// returns its claims.
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, models.Token, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)
}

type UserService interface {
	ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error)
	GetUser(ctx context.Context, requester models.Claims, id int64) (models.User, error)
	UpdateUser(ctx context.Context, requester models.Claims, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, requester models.Claims, id int64) error

	// IsAdmin reports whether the role carried by requester is the admin role.
	IsAdmin(ctx context.Context, requester models.Claims) (bool, error)
}

type RoleService interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	ListRoles(ctx context.Context, page models.PageRequest) (models.RolePage, error)
	GetRole(ctx context.Context, id int64) (models.Role, error)
	UpdateRole(ctx context.Context, id int64, title string) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

type DocumentService interface {
	CreateDocument(ctx context.Context, requester models.Claims, doc models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, requester models.Claims, page models.PageRequest) (models.DocumentPage, error)
	GetDocument(ctx context.Context, requester models.Claims, id int64) (models.Document, error)
	UpdateDocument(ctx context.Context, requester models.Claims, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, requester models.Claims, id int64) error

	// ListUserDocuments returns the documents of ownerID that requester may see.
	ListUserDocuments(ctx context.Context, requester models.Claims, ownerID int64) ([]models.Document, error)
	// SearchDocuments matches query against the titles of visible documents.
	SearchDocuments(ctx context.Context, requester models.Claims, query string) ([]models.Document, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthServiceWrapper defines middleware composition for AuthService.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// UserServiceWrapper defines middleware composition for UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// RoleServiceWrapper defines middleware composition for RoleService.
type RoleServiceWrapper interface {
	Wrap(RoleService) RoleService
}

// DocumentServiceWrapper defines middleware composition for DocumentService.
// Implementations wrap an existing DocumentService to add behavior such as
// validating.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
