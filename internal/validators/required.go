package validators

import (
	"context"
	"fmt"
	"strings"
)

// Required fields of incoming payloads, keyed by their JSON names.
var (
	CreateUserFields     = []string{"firstname", "lastname", "username", "email", "password"}
	LoginFields          = []string{"email", "password"}
	CreateRoleFields     = []string{"title"}
	CreateDocumentFields = []string{"title", "content", "access"}
)

// HasRequiredFields reports whether every named field is present in payload
// and is neither null nor a blank string. Numbers, booleans and
// collections count as present whatever their value.
func HasRequiredFields(payload map[string]any, fields ...string) bool {
	for _, field := range fields {
		value, ok := payload[field]
		if !ok || value == nil {
			return false
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			return false
		}
	}
	return true
}

// RequiredFieldsValidator checks presence of fields in a decoded JSON object.
type RequiredFieldsValidator struct{}

// NewRequiredFieldsValidator returns a Validator that accepts
// map[string]any payloads.
func NewRequiredFieldsValidator() Validator {
	return &RequiredFieldsValidator{}
}

// Validate returns ErrFieldsMissing if any of fields is missing from obj.
func (v *RequiredFieldsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	payload, ok := obj.(map[string]any)
	if !ok {
		return ErrUnsupportedType
	}

	if !HasRequiredFields(payload, fields...) {
		return fmt.Errorf("%w: want %s", ErrFieldsMissing, strings.Join(fields, ", "))
	}
	return nil
}
