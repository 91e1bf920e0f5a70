package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-doc-keeper/internal/config"
	"github.com/MKhiriev/go-doc-keeper/internal/logger"
	"github.com/MKhiriev/go-doc-keeper/internal/store"
	"github.com/MKhiriev/go-doc-keeper/internal/utils"
	"github.com/MKhiriev/go-doc-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification, and delegates
// token issuing to a TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	tokenService TokenService

	// defaultRoleID is assigned to every self-registered user, whatever the
	// request carried.
	defaultRoleID int64

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and TokenService.
func NewAuthService(userRepository store.UserRepository, tokenService TokenService, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenService:   tokenService,
		defaultRoleID:  cfg.DefaultRoleID,
		logger:         logger,
	}
}

// RegisterUser creates a new user account with the default role, stores a
// bcrypt hash of the password and issues a session token for it.
//
// Returns store.ErrUserAlreadyExists (wrapped) if the e-mail is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = hash
	user.RoleID = a.defaultRoleID

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenService.Issue(ctx, registeredUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return registeredUser, token, nil
}

// Login authenticates an existing user by e-mail and password.
//
// An unknown e-mail and a wrong password both yield ErrAuthenticationFailed.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if credentials.Email == "" || credentials.Password == "" {
		log.Error().Str("email", credentials.Email).Msg("invalid credentials provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("email", credentials.Email).Msg("login attempt for unknown email")
		return models.User{}, models.Token{}, ErrAuthenticationFailed
	}
	if err != nil {
		log.Err(err).Str("email", credentials.Email).Msg("user search by email failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.Password, credentials.Password); err != nil {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrAuthenticationFailed
	}

	token, err := a.tokenService.Issue(ctx, foundUser)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return foundUser, token, nil
}
