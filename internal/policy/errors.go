package policy

import "errors"

// Sentinel errors carried by non-Allow decisions.
var (
	// ErrDocumentNotFound is returned when a document to read does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrDocumentIsPrivate is returned when a private document is read by
	// someone other than its owner.
	ErrDocumentIsPrivate = errors.New("document is private")

	// ErrDocumentToChangeNotFound is returned when a document to update or
	// delete does not exist.
	ErrDocumentToChangeNotFound = errors.New("document to change not found")
	// ErrNotDocumentOwner is returned when a document is changed by someone
	// other than its owner.
	ErrNotDocumentOwner = errors.New("only the owner can change a document")

	// ErrRoleNotFound is returned when a role to update or delete does not exist.
	ErrRoleNotFound = errors.New("role not found")
	// ErrAdminRoleImmutable is returned on any attempt to change the admin role.
	ErrAdminRoleImmutable = errors.New("admin role cannot be changed")

	// ErrUserNotFound is returned when the target user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAccessDenied is returned when a non-admin accesses another user.
	ErrUserAccessDenied = errors.New("access to another user is denied")
)
