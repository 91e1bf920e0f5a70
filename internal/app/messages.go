// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the client-facing message strings of the
// go-doc-keeper API.
//
// Msg* constants are written into the {"message": ...} envelope of HTTP
// responses. API clients match on some of them, so the wording is part of
// the wire contract and must not change casually.
package app

// Confirmations.
const (
	MsgUserCreated     = "User successfully created"
	MsgUserLoggedOut   = "User successfully logged out"
	MsgUserUpdated     = "User successfully Updated"
	MsgUserDeleted     = "User successfully deleted"
	MsgRoleCreated     = "Role successfully created"
	MsgRoleDeleted     = "Role was successfully deleted"
	MsgDocumentCreated = "Document successfully created"
	MsgDocumentUpdated = "Document successfully updated"
	MsgDocumentDeleted = "Document successfully deleted"
)

// Request errors.
const (
	// MsgRouteNotFound is returned for paths no route matches.
	MsgRouteNotFound = "Route not found"

	MsgMethodNotAllowed = "Method not allowed"
	MsgInvalidJSON      = "Invalid JSON was passed"
	MsgInvalidID        = "Invalid id"

	// MsgTooManyRequests is returned once a client exhausted its login
	// attempts.
	MsgTooManyRequests = "Too many login attempts, try again later"

	// MsgFieldsMissing is returned when a required field is absent or blank.
	MsgFieldsMissing = "Some Fields are missing"

	MsgInvalidAccess    = "Access must be either public or private"
	MsgInvalidEmail     = "Invalid email address"
	MsgInvalidRoleID    = "Invalid role id"
	MsgPasswordTooLong  = "Password must not exceed 72 bytes"
	MsgNoFieldsToUpdate = "No fields to update"
)

// Authentication and permission errors.
const (
	MsgTokenRequired = "Token required to access this route"
	MsgInvalidToken  = "Invalid or expired token"

	// MsgAuthenticationFailed is returned for an unknown email and for a
	// wrong password alike.
	MsgAuthenticationFailed = "failed to authenticate user"

	MsgNotPermitted      = "You are not permitted to perform this action"
	MsgDocumentIsPrivate = "This Document is Private"
	MsgNotDocumentOwner  = "You can only make changes to your document"
)

// Lookup and conflict errors.
const (
	MsgDocumentNotFound         = "Document Not Found"
	MsgDocumentToChangeNotFound = "Document not found"
	MsgRoleNotFound             = "Role Not Found"
	MsgRoleDoesNotExist         = "Role does not exists"
	MsgUserNotFound             = "User not found"
	MsgReferenceNotFound        = "Referenced resource does not exist"

	MsgUserAlreadyExists     = "User with email already exists"
	MsgRoleAlreadyExists     = "Role already exists"
	MsgDocumentAlreadyExists = "Document with title already exists"
	MsgRoleInUse             = "Role is still assigned to users"
)
