package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/go-playground/validator/v10"
)

// User field names used for field-level scoping.
const (
	FieldFirstName = "firstname"
	FieldLastName  = "lastname"
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldRoleID    = "roleId"
)

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// UserValidator validates users, partial user updates and credentials.
// E-mail format is checked with go-playground/validator.
type UserValidator struct {
	format *validator.Validate
}

// NewUserValidator constructs a UserValidator.
func NewUserValidator() Validator {
	return &UserValidator{format: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate supports models.User, models.UserUpdate and models.Credentials,
// by value or pointer.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.UserUpdate:
		return v.validateUserUpdate(ctx, value, fields...)
	case *models.UserUpdate:
		return v.validateUserUpdate(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if isBlank(user.FirstName) {
				return ErrEmptyName
			}
		case FieldLastName:
			if isBlank(user.LastName) {
				return ErrEmptyName
			}
		case FieldUsername:
			if isBlank(user.Username) {
				return ErrEmptyName
			}
		case FieldEmail:
			if !v.isEmail(ctx, user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := checkPassword(user.Password); err != nil {
				return err
			}
		case FieldRoleID:
			if user.RoleID <= 0 {
				return ErrInvalidRoleID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUserUpdate(ctx context.Context, update models.UserUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFirstName, FieldLastName, FieldUsername, FieldEmail, FieldPassword, FieldRoleID}
	}

	for _, f := range fields {
		switch f {
		case FieldFirstName:
			if update.FirstName != nil && isBlank(*update.FirstName) {
				return ErrEmptyName
			}
		case FieldLastName:
			if update.LastName != nil && isBlank(*update.LastName) {
				return ErrEmptyName
			}
		case FieldUsername:
			if update.Username != nil && isBlank(*update.Username) {
				return ErrEmptyName
			}
		case FieldEmail:
			if update.Email != nil && !v.isEmail(ctx, *update.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if update.Password == nil {
				continue
			}
			if err := checkPassword(*update.Password); err != nil {
				return err
			}
		case FieldRoleID:
			if update.RoleID != nil && *update.RoleID <= 0 {
				return ErrInvalidRoleID
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

func (v *UserValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if isBlank(creds.Email) {
				return ErrFieldsMissing
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrFieldsMissing
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) isEmail(ctx context.Context, email string) bool {
	return v.format.VarCtx(ctx, email, "required,email") == nil
}

func checkPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
