package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// RoleValidator validates roles. The only checked field is FieldTitle.
type RoleValidator struct{}

// NewRoleValidator constructs a RoleValidator.
func NewRoleValidator() Validator {
	return &RoleValidator{}
}

// Validate supports models.Role by value or pointer.
func (v *RoleValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var role models.Role
	switch value := obj.(type) {
	case models.Role:
		role = value
	case *models.Role:
		role = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldTitle}
	}
	for _, f := range fields {
		if f != FieldTitle {
			return ErrUnknownField
		}
		if strings.TrimSpace(role.Title) == "" {
			return ErrEmptyTitle
		}
	}

	return nil
}
