package models

import "time"

// AdminRoleTitle is the title of the protected administrator role.
const AdminRoleTitle = "admin"

// Role is a named permission group users belong to.
type Role struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "roles"
}

// IsAdmin reports whether r is the administrator role.
func (r Role) IsAdmin() bool {
	return r.Title == AdminRoleTitle
}
