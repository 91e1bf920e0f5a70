package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is returned by Login for an unknown e-mail and
	// for a wrong password alike.
	ErrAuthenticationFailed = errors.New("failed to authenticate user")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrRoleChangeForbidden is returned when a non-admin tries to change the
	// role of a user, their own included.
	ErrRoleChangeForbidden = errors.New("only an admin can change user roles")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
