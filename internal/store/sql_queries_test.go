// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-doc-keeper/models"
)

func Test_buildListDocumentsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.DocumentFilter
		page       models.PageRequest
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "viewer only",
			filter: models.DocumentFilter{ViewerID: 7},
			page:   models.PageRequest{Offset: 3, Limit: 5},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "(access = $1 OR owner_id = $2)")
				require.Contains(t, query, "ORDER BY created_at DESC, id DESC")
				// the skip uses the fixed page size of ten
				require.Contains(t, query, "LIMIT 5 OFFSET 20")
				require.Equal(t, []any{models.AccessPublic, int64(7)}, args)
			},
		},
		{
			name:   "owner and title",
			filter: models.DocumentFilter{ViewerID: 7, OwnerID: 9, TitleQuery: "plan"},
			page:   models.PageRequest{Offset: 1, Limit: 10},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "owner_id = $3")
				require.Contains(t, query, "title ILIKE $4")
				require.Len(t, args, 4)
				require.Equal(t, "%plan%", args[3])
			},
		},
		{
			name:   "like wildcards are escaped",
			filter: models.DocumentFilter{ViewerID: 1, TitleQuery: "50%_off"},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Equal(t, `%50\%\_off%`, args[2])
				require.NotContains(t, query, "LIMIT")
			},
		},
		{
			name:   "blank title query is ignored",
			filter: models.DocumentFilter{ViewerID: 1, TitleQuery: "   "},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, strings.ToUpper(query), "ILIKE")
				require.Len(t, args, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListDocumentsQuery(tt.filter, tt.page)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdateUserQuery_OnlyProvidedFields(t *testing.T) {
	pw := "new-hash"
	role := int64(1)

	query, args, err := buildUpdateUserQuery(4, models.UserUpdate{Password: &pw, RoleID: &role})

	require.NoError(t, err)
	require.Equal(t, "UPDATE users SET updated_at = NOW(), password = $1, role_id = $2 WHERE id = $3 "+returning(userColumns), query)
	require.Equal(t, []any{pw, role, int64(4)}, args)
}

func Test_buildUpdateDocumentQuery_NoFields(t *testing.T) {
	query, args, err := buildUpdateDocumentQuery(4, models.DocumentUpdate{})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(query, "UPDATE documents SET updated_at = NOW() WHERE id = $1"))
	require.Equal(t, []any{int64(4)}, args)
}

func Test_buildInsertUserQuery_ReturnsAllColumns(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{FirstName: "a", LastName: "b", Username: "c", Email: "d", Password: "e", RoleID: 2})

	require.NoError(t, err)
	require.Contains(t, query, "INSERT INTO users (firstname,lastname,username,email,password,role_id)")
	require.True(t, strings.HasSuffix(query, "RETURNING id, firstname, lastname, username, email, password, role_id, created_at, updated_at"))
	require.Len(t, args, 6)
}
