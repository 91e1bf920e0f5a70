package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// DocumentValidationService rejects malformed documents before they reach
// the wrapped DocumentService. Read operations pass through unchanged.
type DocumentValidationService struct {
	DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) CreateDocument(ctx context.Context, requester models.Claims, doc models.Document) (models.Document, error) {
	if err := v.validator.Validate(ctx, doc); err != nil {
		return models.Document{}, fmt.Errorf("error during document validation before saving: %w", err)
	}
	return v.DocumentService.CreateDocument(ctx, requester, doc)
}

func (v *DocumentValidationService) UpdateDocument(ctx context.Context, requester models.Claims, id int64, update models.DocumentUpdate) (models.Document, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Document{}, fmt.Errorf("error during document update validation: %w", err)
	}
	return v.DocumentService.UpdateDocument(ctx, requester, id, update)
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.DocumentService = inner
	return v
}

// AuthValidationService checks registration data and credentials.
type AuthValidationService struct {
	AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, user models.User) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during user validation before registration: %w", err)
	}
	return v.AuthService.RegisterUser(ctx, user)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("error during credentials validation: %w", err)
	}
	return v.AuthService.Login(ctx, credentials)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.AuthService = inner
	return v
}

// UserValidationService checks partial user updates.
type UserValidationService struct {
	UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) UpdateUser(ctx context.Context, requester models.Claims, id int64, update models.UserUpdate) (models.User, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.User{}, fmt.Errorf("error during user update validation: %w", err)
	}
	return v.UserService.UpdateUser(ctx, requester, id, update)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.UserService = inner
	return v
}

// RoleValidationService checks role titles on create and update.
type RoleValidationService struct {
	RoleService
	validator validators.Validator
}

func NewRoleValidationService() RoleServiceWrapper {
	return &RoleValidationService{
		validator: validators.NewRoleValidator(),
	}
}

func (v *RoleValidationService) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	if err := v.validator.Validate(ctx, role); err != nil {
		return models.Role{}, fmt.Errorf("error during role validation before saving: %w", err)
	}
	return v.RoleService.CreateRole(ctx, role)
}

func (v *RoleValidationService) UpdateRole(ctx context.Context, id int64, title string) (models.Role, error) {
	if err := v.validator.Validate(ctx, models.Role{Title: title}); err != nil {
		return models.Role{}, fmt.Errorf("error during role validation before update: %w", err)
	}
	return v.RoleService.UpdateRole(ctx, id, title)
}

func (v *RoleValidationService) Wrap(inner RoleService) RoleService {
	v.RoleService = inner
	return v
}
