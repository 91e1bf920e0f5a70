// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request carries no token at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrAdminOnly is returned when a non-admin calls an admin-only route.
	ErrAdminOnly = errors.New("route is restricted to admins")

	// ErrInvalidJSON is returned when the request body is not a JSON object
	// or does not match the expected field types.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidID is returned when a path id is not a positive integer.
	ErrInvalidID = errors.New("invalid id in path")

	// ErrTooManyRequests is returned by the login rate limiter.
	ErrTooManyRequests = errors.New("too many requests")
)
