package store

import (
	"github.com/MKhiriev/go-doc-keeper/models"
)

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Username, &u.Email, &u.Password, &u.RoleID, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

func scanRole(s scanner) (models.Role, error) {
	var r models.Role
	err := s.Scan(&r.ID, &r.Title, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func scanDocument(s scanner) (models.Document, error) {
	var d models.Document
	err := s.Scan(&d.ID, &d.Title, &d.Content, &d.Access, &d.OwnerID, &d.CreatedAt, &d.UpdatedAt)
	return d, err
}
