// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads (users, credentials, roles,
// documents) before they reach the services. Each validator accepts the
// model by value or pointer and answers ErrUnsupportedType for anything
// else.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked, otherwise the validator applies its default set for the type.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
