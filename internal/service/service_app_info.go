package service

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	version string
}

// NewAppInfoService picks the configured version, then the one stamped at
// build time. It fails when neither is known.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version, origin := cfg.Version, "config"
	if version == "" {
		version, origin = buildInfo.BuildVersion(), "build"
	}
	if version == "" || version == notAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", version).Str("origin", origin).Msg("application version resolved")
	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
