// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasRequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		payload map[string]any
		fields  []string
		want    bool
	}{
		{name: "all present", payload: map[string]any{"title": "a", "content": "b", "access": "public"}, fields: CreateDocumentFields, want: true},
		{name: "missing field", payload: map[string]any{"title": "a", "content": "b"}, fields: CreateDocumentFields, want: false},
		{name: "null field", payload: map[string]any{"title": nil}, fields: CreateRoleFields, want: false},
		{name: "empty string", payload: map[string]any{"title": ""}, fields: CreateRoleFields, want: false},
		{name: "blank string", payload: map[string]any{"title": "   "}, fields: CreateRoleFields, want: false},
		{name: "number counts as present", payload: map[string]any{"roleId": float64(0)}, fields: []string{"roleId"}, want: true},
		{name: "no fields required", payload: map[string]any{}, fields: nil, want: true},
		{name: "nil payload", payload: nil, fields: LoginFields, want: false},
		{name: "extra fields ignored", payload: map[string]any{"email": "a@b.c", "password": "x", "extra": 1}, fields: LoginFields, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasRequiredFields(tt.payload, tt.fields...))
		})
	}
}

func TestRequiredFieldsValidator(t *testing.T) {
	v := NewRequiredFieldsValidator()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		payload := map[string]any{"firstname": "a", "lastname": "b", "username": "c", "email": "d@e.f", "password": "g"}
		require.NoError(t, v.Validate(ctx, payload, CreateUserFields...))
	})

	t.Run("missing", func(t *testing.T) {
		err := v.Validate(ctx, map[string]any{"email": "d@e.f"}, LoginFields...)
		require.ErrorIs(t, err, ErrFieldsMissing)
	})

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "not a map", LoginFields...)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})
}
