package service

import (
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/models"
)

type Services struct {
	TokenService    TokenService
	AuthService     AuthService
	UserService     UserService
	RoleService     RoleService
	DocumentService DocumentService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of storages. Services that accept
// input are wrapped with their validation layer.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokenService := NewTokenService(cfg.App, logger)

	return &Services{
		TokenService: tokenService,
		AuthService: NewAuthValidationService().
			Wrap(NewAuthService(storages.UserRepository, tokenService, cfg.App, logger)),
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, storages.RoleRepository, logger)),
		RoleService: NewRoleValidationService().
			Wrap(NewRoleService(storages.RoleRepository, logger)),
		DocumentService: NewDocumentValidationService().
			Wrap(NewDocumentService(storages.DocumentRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
