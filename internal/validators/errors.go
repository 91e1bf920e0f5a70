package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrFieldsMissing is returned when a required field is absent or blank.
	ErrFieldsMissing = errors.New("some fields are missing")

	ErrInvalidAccess    = errors.New("access must be either public or private")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooLong  = errors.New("password is longer than 72 bytes")
	ErrEmptyName        = errors.New("name is required")
	ErrInvalidRoleID    = errors.New("invalid role ID")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
