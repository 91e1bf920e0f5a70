package models

import "time"

// User represents an account of the document management system.
// Password holds a bcrypt hash once the user is persisted and is never
// serialized back to clients.
type User struct {
	// ID is the server-assigned identifier of the user.
	ID int64 `json:"id"`

	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username"`

	// Email is unique across all users and is used as the login.
	Email string `json:"email"`

	// Password is the plain-text password on input and the bcrypt hash after
	// it was read from or written to storage.
	Password string `json:"password,omitempty"`

	// RoleID references the role the user belongs to.
	RoleID int64 `json:"roleId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserDetails is the public projection of a [User]: everything except the
// password hash.
type UserDetails struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    int64     `json:"roleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserUpdate describes a partial update of a user. Nil fields are left
// untouched.
type UserUpdate struct {
	FirstName *string `json:"firstname,omitempty"`
	LastName  *string `json:"lastname,omitempty"`
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	RoleID    *int64  `json:"roleId,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Username == nil &&
		u.Email == nil && u.Password == nil && u.RoleID == nil
}

// Credentials is the body of a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
