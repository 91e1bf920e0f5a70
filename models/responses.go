package models

// MessageResponse is the envelope used for errors and confirmations.
type MessageResponse struct {
	Message string `json:"message"`
}

// SignupResponse is returned after a successful registration.
type SignupResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"userId"`
	RoleID  int64  `json:"roleId"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	UserIdentity int64  `json:"userIdentity"`
	Token        string `json:"token"`
	ExpiresIn    string `json:"expiresIn"`
}

// UsersResponse is a page of users.
type UsersResponse struct {
	Users      []UserDetails `json:"users"`
	Pagination Pagination    `json:"pagination"`
}

// RoleResponse wraps a single role.
type RoleResponse struct {
	Role Role `json:"role"`
}

// UpdatedRoleResponse wraps a role after update.
type UpdatedRoleResponse struct {
	UpdatedRole Role `json:"updatedRole"`
}

// RolesResponse is a page of roles.
type RolesResponse struct {
	Roles      []Role     `json:"roles"`
	Pagination Pagination `json:"pagination"`
}

// DocumentResponse wraps a single document, optionally with a confirmation.
type DocumentResponse struct {
	Message  string   `json:"message,omitempty"`
	Document Document `json:"document"`
}

// DocumentsResponse is a list of documents. Pagination is omitted for
// listings that are not paginated (search, per-user).
type DocumentsResponse struct {
	Documents  []DocumentListItem `json:"documents"`
	Pagination *Pagination        `json:"pagination,omitempty"`
}

// UserPage is a page of users as returned by the service layer.
type UserPage struct {
	Users      []User
	Pagination Pagination
}

// RolePage is a page of roles as returned by the service layer.
type RolePage struct {
	Roles      []Role
	Pagination Pagination
}

// DocumentPage is a page of documents as returned by the service layer.
type DocumentPage struct {
	Documents  []Document
	Pagination Pagination
}
