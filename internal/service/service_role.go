package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/policy"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type roleService struct {
	roleRepository store.RoleRepository

	logger *logger.Logger
}

func NewRoleService(roleRepository store.RoleRepository, logger *logger.Logger) RoleService {
	return &roleService{
		roleRepository: roleRepository,
		logger:         logger,
	}
}

// CreateRole stores a new role. A taken title yields
// store.ErrRoleAlreadyExists.
func (r *roleService) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	_, err := r.roleRepository.FindRoleByTitle(ctx, role.Title)
	switch {
	case err == nil:
		log.Info().Str("title", role.Title).Msg("role already exists")
		return models.Role{}, store.ErrRoleAlreadyExists
	case !errors.Is(err, store.ErrRoleNotFound):
		log.Err(err).Str("title", role.Title).Msg("role search by title failed")
		return models.Role{}, fmt.Errorf("role search by title failed: %w", err)
	}

	created, err := r.roleRepository.CreateRole(ctx, role)
	if err != nil {
		log.Err(err).Str("title", role.Title).Msg("role creation failed")
		return models.Role{}, fmt.Errorf("role creation failed: %w", err)
	}

	return created, nil
}

func (r *roleService) ListRoles(ctx context.Context, page models.PageRequest) (models.RolePage, error) {
	log := logger.FromContext(ctx)

	roles, err := r.roleRepository.ListRoles(ctx, page)
	if err != nil {
		log.Err(err).Msg("listing roles failed")
		return models.RolePage{}, fmt.Errorf("listing roles failed: %w", err)
	}

	total, err := r.roleRepository.CountRoles(ctx)
	if err != nil {
		log.Err(err).Msg("counting roles failed")
		return models.RolePage{}, fmt.Errorf("counting roles failed: %w", err)
	}

	return models.RolePage{Roles: roles, Pagination: models.NewPagination(page, total)}, nil
}

func (r *roleService) GetRole(ctx context.Context, id int64) (models.Role, error) {
	role, err := r.roleRepository.FindRoleByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("role search failed")
		return models.Role{}, fmt.Errorf("role search failed: %w", err)
	}
	return role, nil
}

// UpdateRole renames the role id. The admin role cannot be renamed.
func (r *roleService) UpdateRole(ctx context.Context, id int64, title string) (models.Role, error) {
	if err := r.authorize(ctx, id); err != nil {
		return models.Role{}, err
	}

	updated, err := r.roleRepository.UpdateRole(ctx, id, title)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("role update failed")
		return models.Role{}, fmt.Errorf("role update failed: %w", err)
	}

	return updated, nil
}

// DeleteRole removes the role id. The admin role cannot be removed and a
// role still assigned to users yields store.ErrRoleInUse.
func (r *roleService) DeleteRole(ctx context.Context, id int64) error {
	if err := r.authorize(ctx, id); err != nil {
		return err
	}

	if err := r.roleRepository.DeleteRole(ctx, id); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("role deletion failed")
		return fmt.Errorf("role deletion failed: %w", err)
	}

	return nil
}

func (r *roleService) authorize(ctx context.Context, id int64) error {
	var role *models.Role

	found, err := r.roleRepository.FindRoleByID(ctx, id)
	switch {
	case err == nil:
		role = &found
	case !errors.Is(err, store.ErrRoleNotFound):
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("role search failed")
		return fmt.Errorf("role search failed: %w", err)
	}

	if decision := policy.MutateRole(role); !decision.Allowed() {
		logger.FromContext(ctx).Info().Int64("id", id).Stringer("outcome", decision.Outcome).Msg("role change rejected")
		return decision.Err
	}

	return nil
}
