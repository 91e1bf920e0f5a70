package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/internal/validators"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// EnsureAdmin makes the account configured by cfg.AdminEmail an admin.
// A missing account is created with cfg.AdminPassword. An existing account
// is promoted and keeps its password. Without an admin email it does nothing.
func EnsureAdmin(ctx context.Context, users store.UserRepository, roles store.RoleRepository, cfg config.App) (models.User, error) {
	if cfg.AdminEmail == "" {
		return models.User{}, nil
	}
	log := logger.FromContext(ctx).With().Str("email", cfg.AdminEmail).Logger()

	adminRole, err := roles.FindRoleByTitle(ctx, models.AdminRoleTitle)
	if err != nil {
		log.Err(err).Msg("admin role lookup failed")
		return models.User{}, fmt.Errorf("admin role lookup failed: %w", err)
	}

	existing, err := users.FindUserByEmail(ctx, cfg.AdminEmail)
	switch {
	case err == nil && existing.RoleID == adminRole.ID:
		log.Debug().Int64("id", existing.ID).Msg("admin account already present")
		return existing, nil
	case err == nil:
		promoted, err := users.UpdateUser(ctx, existing.ID, models.UserUpdate{RoleID: &adminRole.ID})
		if err != nil {
			log.Err(err).Int64("id", existing.ID).Msg("admin promotion failed")
			return models.User{}, fmt.Errorf("admin promotion failed: %w", err)
		}
		log.Info().Int64("id", promoted.ID).Msg("existing account promoted to admin")
		return promoted, nil
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("admin account lookup failed")
		return models.User{}, fmt.Errorf("admin account lookup failed: %w", err)
	}

	admin := models.User{
		FirstName: "Admin",
		LastName:  "Admin",
		Username:  adminUsername(cfg.AdminEmail),
		Email:     cfg.AdminEmail,
		Password:  cfg.AdminPassword,
		RoleID:    adminRole.ID,
	}
	if err = validators.NewUserValidator().Validate(ctx, admin); err != nil {
		return models.User{}, fmt.Errorf("invalid admin account: %w", err)
	}

	if admin.Password, err = utils.HashPassword(admin.Password); err != nil {
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	created, err := users.CreateUser(ctx, admin)
	if err != nil {
		log.Err(err).Msg("admin account creation failed")
		return models.User{}, fmt.Errorf("admin account creation failed: %w", err)
	}
	log.Info().Int64("id", created.ID).Msg("admin account created")
	return created, nil
}

// adminUsername is the local part of email.
func adminUsername(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
