package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context, page models.PageRequest) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, id int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// RoleRepository persists roles.
type RoleRepository interface {
	CreateRole(ctx context.Context, role models.Role) (models.Role, error)
	FindRoleByID(ctx context.Context, id int64) (models.Role, error)
	FindRoleByTitle(ctx context.Context, title string) (models.Role, error)
	ListRoles(ctx context.Context, page models.PageRequest) ([]models.Role, error)
	CountRoles(ctx context.Context) (int, error)
	UpdateRole(ctx context.Context, id int64, title string) (models.Role, error)
	DeleteRole(ctx context.Context, id int64) error
}

// DocumentRepository persists documents.
type DocumentRepository interface {
	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	FindDocumentByID(ctx context.Context, id int64) (models.Document, error)
	FindDocumentByTitle(ctx context.Context, title string) (models.Document, error)
	// ListDocuments returns documents matching filter, newest first.
	// A zero page returns every match.
	ListDocuments(ctx context.Context, filter models.DocumentFilter, page models.PageRequest) ([]models.Document, error)
	CountDocuments(ctx context.Context, filter models.DocumentFilter) (int, error)
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
