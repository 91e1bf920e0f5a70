package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs session tokens with HMAC-SHA256.
type tokenService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match are rejected.
	tokenIssuer string

	tokenDuration time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the security parameters
// of cfg.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(cfg, time.Now, logger)
}

func newTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) *tokenService {
	return &tokenService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           now,
		logger:        logger,
	}
}

// Issue signs a token with {UserId: user.ID, RoleId: user.RoleID} that
// expires after the configured duration.
func (t *tokenService) Issue(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.tokenIssuer, user.ID, user.RoleID, t.tokenDuration, t.tokenSignKey, t.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.ID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify returns ErrTokenIsExpired for a well-formed token past its expiry
// and ErrTokenIsExpiredOrInvalid for any other failure.
func (t *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.tokenSignKey, t.tokenIssuer, t.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return token.Claims, nil
}
