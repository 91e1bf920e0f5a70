// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client of the go-doc-keeper REST API.
//
// [ServerAdapter] hides the transport from its callers. Error responses are
// mapped by status code onto the sentinels in errors.go, so callers can use
// [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server message stays in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-doc-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to the go-doc-keeper server on behalf of one user.
type ServerAdapter interface {
	// SetToken stores the session token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored session token, or "" before a login.
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.SignupResponse, error)

	// Login exchanges credentials for a token and stores it.
	Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, error)

	// Logout notifies the server and forgets the stored token.
	Logout(ctx context.Context) error

	CreateDocument(ctx context.Context, doc models.Document) (models.Document, error)
	ListDocuments(ctx context.Context, page models.PageRequest) ([]models.DocumentListItem, models.Pagination, error)
	GetDocument(ctx context.Context, id int64) (models.Document, error)
	UpdateDocument(ctx context.Context, id int64, update models.DocumentUpdate) (models.Document, error)
	DeleteDocument(ctx context.Context, id int64) error

	// SearchDocuments matches query against the titles of visible documents.
	SearchDocuments(ctx context.Context, query string) ([]models.DocumentListItem, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
