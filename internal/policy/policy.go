package policy

import (
	"github.com/MKhiriev/go-doc-keeper/models"
)

// ReadDocument decides whether requester may read doc. Public documents are
// readable by everyone, private ones by their owner only.
func ReadDocument(doc *models.Document, requester models.Claims) Decision {
	if doc == nil {
		return notFound(ErrDocumentNotFound)
	}
	if doc.Access == models.AccessPublic || doc.OwnerID == requester.UserID {
		return allow()
	}
	return deny(ErrDocumentIsPrivate)
}

// WriteDocument decides whether requester may update or delete doc.
// Only the owner may, administrators included.
func WriteDocument(doc *models.Document, requester models.Claims) Decision {
	if doc == nil {
		return notFound(ErrDocumentToChangeNotFound)
	}
	if doc.OwnerID == requester.UserID {
		return allow()
	}
	return deny(ErrNotDocumentOwner)
}

// MutateRole decides whether role may be updated or deleted. The admin role
// is denied for every requester.
func MutateRole(role *models.Role) Decision {
	if role == nil {
		return notFound(ErrRoleNotFound)
	}
	if IsAdmin(role) {
		return deny(ErrAdminRoleImmutable)
	}
	return allow()
}

// AccessUser decides whether requester may read, update or delete target.
func AccessUser(target *models.User, requester models.Claims, requesterIsAdmin bool) Decision {
	if target == nil {
		return notFound(ErrUserNotFound)
	}
	if target.ID == requester.UserID || requesterIsAdmin {
		return allow()
	}
	return deny(ErrUserAccessDenied)
}

// IsAdmin reports whether role is the administrator role.
func IsAdmin(role *models.Role) bool {
	return role != nil && role.IsAdmin()
}
