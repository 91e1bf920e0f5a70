package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/models"
)

// Document field names used for field-level scoping.
const (
	FieldTitle   = "title"
	FieldContent = "content"
	FieldAccess  = "access"
)

// DocumentValidator validates documents and partial document updates.
type DocumentValidator struct{}

// NewDocumentValidator constructs a DocumentValidator.
func NewDocumentValidator() Validator {
	return &DocumentValidator{}
}

// Validate supports models.Document and models.DocumentUpdate, by value or
// pointer. With no fields the full default set is checked.
func (v *DocumentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Document:
		return v.validateDocument(ctx, value, fields...)
	case *models.Document:
		return v.validateDocument(ctx, *value, fields...)

	case models.DocumentUpdate:
		return v.validateDocumentUpdate(ctx, value, fields...)
	case *models.DocumentUpdate:
		return v.validateDocumentUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DocumentValidator) validateDocument(_ context.Context, doc models.Document, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldAccess}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(doc.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if strings.TrimSpace(doc.Content) == "" {
				return ErrEmptyContent
			}
		case FieldAccess:
			if !doc.Access.IsValid() {
				return ErrInvalidAccess
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateDocumentUpdate checks only the fields the update carries.
// An update with no fields at all is rejected.
func (v *DocumentValidator) validateDocumentUpdate(_ context.Context, update models.DocumentUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent, FieldAccess}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldContent:
			if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
				return ErrEmptyContent
			}
		case FieldAccess:
			if update.Access != nil && !update.Access.IsValid() {
				return ErrInvalidAccess
			}
		default:
			return ErrUnknownField
		}
	}

	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	return nil
}
