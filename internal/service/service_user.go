package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type userService struct {
	userRepository store.UserRepository
	roleRepository store.RoleRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, roleRepository store.RoleRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context, page models.PageRequest) (models.UserPage, error) {
	log := logger.FromContext(ctx)

	users, err := u.userRepository.ListUsers(ctx, page)
	if err != nil {
		log.Err(err).Msg("listing users failed")
		return models.UserPage{}, fmt.Errorf("listing users failed: %w", err)
	}

	total, err := u.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Msg("counting users failed")
		return models.UserPage{}, fmt.Errorf("counting users failed: %w", err)
	}

	return models.UserPage{Users: users, Pagination: models.NewPagination(page, total)}, nil
}

func (u *userService) GetUser(ctx context.Context, requester models.Claims, id int64) (models.User, error) {
	target, _, err := u.authorize(ctx, requester, id)
	if err != nil {
		return models.User{}, err
	}
	return *target, nil
}

// UpdateUser applies update to the user id. Passwords are re-hashed and a
// role change is only accepted from an admin.
func (u *userService) UpdateUser(ctx context.Context, requester models.Claims, id int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	target, isAdmin, err := u.authorize(ctx, requester, id)
	if err != nil {
		return models.User{}, err
	}

	if update.RoleID != nil && *update.RoleID != target.RoleID && !isAdmin {
		log.Warn().Int64("requester", requester.UserID).Int64("target", id).Msg("non-admin tried to change a role")
		return models.User{}, ErrRoleChangeForbidden
	}

	if update.Password != nil {
		hash, hashErr := utils.HashPassword(*update.Password)
		if hashErr != nil {
			log.Err(hashErr).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("password hashing failed: %w", hashErr)
		}
		update.Password = &hash
	}

	updated, err := u.userRepository.UpdateUser(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		return models.User{}, fmt.Errorf("user update failed: %w", err)
	}

	return updated, nil
}

func (u *userService) DeleteUser(ctx context.Context, requester models.Claims, id int64) error {
	if _, _, err := u.authorize(ctx, requester, id); err != nil {
		return err
	}

	if err := u.userRepository.DeleteUser(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user deletion failed")
		return fmt.Errorf("user deletion failed: %w", err)
	}

	return nil
}

// IsAdmin resolves the role of requester. A role that no longer exists is
// treated as a non-admin role.
func (u *userService) IsAdmin(ctx context.Context, requester models.Claims) (bool, error) {
	role, err := u.roleRepository.FindRoleByID(ctx, requester.RoleID)
	if errors.Is(err, store.ErrRoleNotFound) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("role_id", requester.RoleID).Msg("role lookup failed")
		return false, fmt.Errorf("role lookup failed: %w", err)
	}

	return policy.IsAdmin(&role), nil
}

// authorize loads the user id and evaluates the access policy for requester.
func (u *userService) authorize(ctx context.Context, requester models.Claims, id int64) (*models.User, bool, error) {
	var target *models.User

	found, err := u.userRepository.FindUserByID(ctx, id)
	switch {
	case err == nil:
		target = &found
	case !errors.Is(err, store.ErrUserNotFound):
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("user search failed")
		return nil, false, fmt.Errorf("user search failed: %w", err)
	}

	isAdmin := false
	if target != nil {
		if isAdmin, err = u.IsAdmin(ctx, requester); err != nil {
			return nil, false, err
		}
	}

	if decision := policy.AccessUser(target, requester, isAdmin); !decision.Allowed() {
		return nil, false, decision.Err
	}

	return target, isAdmin, nil
}
