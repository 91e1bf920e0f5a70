package http

import (
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services

	// tokenDuration is reported to clients as the lifetime of login tokens.
	tokenDuration time.Duration

	// requestTimeout bounds every request; zero disables the bound.
	requestTimeout time.Duration

	// trustProxy enables chi's RealIP, so proxy headers set the client
	// address used by logging and login rate limiting.
	trustProxy bool

	loginLimiter *loginLimiter
	metrics      *metrics

	logger *logger.Logger
}

// NewHandler builds a Handler. Collectors are registered on a registry owned
// by the handler and exposed on /metrics.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		tokenDuration:  cfg.App.TokenDuration,
		requestTimeout: cfg.Server.RequestTimeout,
		trustProxy:     cfg.Server.TrustProxy,
		loginLimiter:   newLoginLimiter(cfg.App.LoginRateLimit, cfg.App.LoginRateBurst),
		metrics:        newMetrics(prometheus.NewRegistry()),
		logger:         logger,
	}
}
