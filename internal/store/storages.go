package store

import "github.com/MKhiriev/go-doc-keeper/internal/logger"

// Storages groups the repositories handed to the service layer.
type Storages struct {
	UserRepository     UserRepository
	RoleRepository     RoleRepository
	DocumentRepository DocumentRepository
}

// NewStorages builds every repository on top of one connection pool.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		RoleRepository:     NewRoleRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
	}
}
