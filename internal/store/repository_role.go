package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type roleRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoleRepository constructs a [RoleRepository] over the "roles" table.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *roleRepository) CreateRole(ctx context.Context, role models.Role) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertRoleQuery(role)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.CreateRole").Msg("failed to create query")
		return models.Role{}, err
	}

	created, err := scanRole(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.CreateRole").Bool("retryable", r.retryable(err)).Msg("error inserting role")
		if isUniqueViolation(err) {
			return models.Role{}, ErrRoleAlreadyExists
		}
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

func (r *roleRepository) FindRoleByID(ctx context.Context, id int64) (models.Role, error) {
	return r.findRole(ctx, sq.Eq{"id": id})
}

func (r *roleRepository) FindRoleByTitle(ctx context.Context, title string) (models.Role, error) {
	return r.findRole(ctx, sq.Eq{"title": title})
}

func (r *roleRepository) findRole(ctx context.Context, where sq.Eq) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectRoleQuery(where)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.findRole").Msg("failed to create query")
		return models.Role{}, err
	}

	role, err := scanRole(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Role{}, ErrRoleNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.findRole").Bool("retryable", r.retryable(err)).Msg("error selecting role")
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return role, nil
}

func (r *roleRepository) ListRoles(ctx context.Context, page models.PageRequest) ([]models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRolesQuery(page)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.ListRoles").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.ListRoles").Bool("retryable", r.retryable(err)).Msg("error selecting roles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	roles := make([]models.Role, 0, page.Limit)
	for rows.Next() {
		role, scanErr := scanRole(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*roleRepository.ListRoles").Msg("failed to scan role row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		roles = append(roles, role)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return roles, nil
}

func (r *roleRepository) CountRoles(ctx context.Context) (int, error) {
	return r.count(ctx, models.Role{}.TableName())
}

func (r *roleRepository) UpdateRole(ctx context.Context, id int64, title string) (models.Role, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRoleQuery(id, title)
	if err != nil {
		log.Err(err).Str("func", "*roleRepository.UpdateRole").Msg("failed to create query")
		return models.Role{}, err
	}

	role, err := scanRole(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}
		log.Err(err).Str("func", "*roleRepository.UpdateRole").Int64("role_id", id).Bool("retryable", r.retryable(err)).Msg("error updating role")
		if isUniqueViolation(err) {
			return models.Role{}, ErrRoleAlreadyExists
		}
		return models.Role{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return role, nil
}

// DeleteRole fails with [ErrRoleInUse] while users still reference the role.
func (r *roleRepository) DeleteRole(ctx context.Context, id int64) error {
	return r.delete(ctx, models.Role{}.TableName(), id, ErrRoleNotFound, ErrRoleInUse)
}
