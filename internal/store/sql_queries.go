package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var (
	userColumns     = []string{"id", "firstname", "lastname", "username", "email", "password", "role_id", "created_at", "updated_at"}
	roleColumns     = []string{"id", "title", "created_at", "updated_at"}
	documentColumns = []string{"id", "title", "content", "access", "owner_id", "created_at", "updated_at"}
)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// pageSuffix applies LIMIT/OFFSET unless page is zero.
func pageSuffix(b sq.SelectBuilder, page models.PageRequest) sq.SelectBuilder {
	if page.Limit <= 0 {
		return b
	}
	return b.Limit(uint64(page.Limit)).Offset(page.RowSkip())
}

// ─────────────────────────────────────────────
// users
// ─────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert(user.TableName()).
		Columns("firstname", "lastname", "username", "email", "password", "role_id").
		Values(user.FirstName, user.LastName, user.Username, user.Email, user.Password, user.RoleID).
		Suffix(returning(userColumns)))
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return toSQL(psql.Select(userColumns...).From(models.User{}.TableName()).Where(where))
}

func buildListUsersQuery(page models.PageRequest) (string, []any, error) {
	b := psql.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("created_at DESC", "id DESC")
	return toSQL(pageSuffix(b, page))
}

func buildUpdateUserQuery(id int64, update models.UserUpdate) (string, []any, error) {
	b := psql.Update(models.User{}.TableName()).Set("updated_at", sq.Expr("NOW()"))

	if update.FirstName != nil {
		b = b.Set("firstname", *update.FirstName)
	}
	if update.LastName != nil {
		b = b.Set("lastname", *update.LastName)
	}
	if update.Username != nil {
		b = b.Set("username", *update.Username)
	}
	if update.Email != nil {
		b = b.Set("email", *update.Email)
	}
	if update.Password != nil {
		b = b.Set("password", *update.Password)
	}
	if update.RoleID != nil {
		b = b.Set("role_id", *update.RoleID)
	}

	return toSQL(b.Where(sq.Eq{"id": id}).Suffix(returning(userColumns)))
}

// ─────────────────────────────────────────────
// roles
// ─────────────────────────────────────────────

func buildInsertRoleQuery(role models.Role) (string, []any, error) {
	return toSQL(psql.Insert(role.TableName()).
		Columns("title").
		Values(role.Title).
		Suffix(returning(roleColumns)))
}

func buildSelectRoleQuery(where sq.Eq) (string, []any, error) {
	return toSQL(psql.Select(roleColumns...).From(models.Role{}.TableName()).Where(where))
}

func buildListRolesQuery(page models.PageRequest) (string, []any, error) {
	b := psql.Select(roleColumns...).
		From(models.Role{}.TableName()).
		OrderBy("created_at DESC", "id DESC")
	return toSQL(pageSuffix(b, page))
}

func buildUpdateRoleQuery(id int64, title string) (string, []any, error) {
	return toSQL(psql.Update(models.Role{}.TableName()).
		Set("title", title).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(roleColumns)))
}

// ─────────────────────────────────────────────
// documents
// ─────────────────────────────────────────────

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// documentConditions restricts results to what filter.ViewerID may see:
// every public document plus the viewer's own.
func documentConditions(filter models.DocumentFilter) sq.And {
	conds := sq.And{
		sq.Or{
			sq.Eq{"access": models.AccessPublic},
			sq.Eq{"owner_id": filter.ViewerID},
		},
	}
	if filter.OwnerID != 0 {
		conds = append(conds, sq.Eq{"owner_id": filter.OwnerID})
	}
	if q := strings.TrimSpace(filter.TitleQuery); q != "" {
		conds = append(conds, sq.ILike{"title": "%" + likeEscaper.Replace(q) + "%"})
	}
	return conds
}

func buildInsertDocumentQuery(doc models.Document) (string, []any, error) {
	return toSQL(psql.Insert(doc.TableName()).
		Columns("title", "content", "access", "owner_id").
		Values(doc.Title, doc.Content, doc.Access, doc.OwnerID).
		Suffix(returning(documentColumns)))
}

func buildSelectDocumentQuery(where sq.Eq) (string, []any, error) {
	return toSQL(psql.Select(documentColumns...).From(models.Document{}.TableName()).Where(where))
}

func buildListDocumentsQuery(filter models.DocumentFilter, page models.PageRequest) (string, []any, error) {
	b := psql.Select(documentColumns...).
		From(models.Document{}.TableName()).
		Where(documentConditions(filter)).
		OrderBy("created_at DESC", "id DESC")
	return toSQL(pageSuffix(b, page))
}

func buildCountDocumentsQuery(filter models.DocumentFilter) (string, []any, error) {
	return toSQL(psql.Select("COUNT(*)").
		From(models.Document{}.TableName()).
		Where(documentConditions(filter)))
}

func buildUpdateDocumentQuery(id int64, update models.DocumentUpdate) (string, []any, error) {
	b := psql.Update(models.Document{}.TableName()).Set("updated_at", sq.Expr("NOW()"))

	if update.Title != nil {
		b = b.Set("title", *update.Title)
	}
	if update.Content != nil {
		b = b.Set("content", *update.Content)
	}
	if update.Access != nil {
		b = b.Set("access", *update.Access)
	}

	return toSQL(b.Where(sq.Eq{"id": id}).Suffix(returning(documentColumns)))
}

// ─────────────────────────────────────────────
// shared
// ─────────────────────────────────────────────

func buildCountQuery(table string) (string, []any, error) {
	return toSQL(psql.Select("COUNT(*)").From(table))
}

func buildDeleteQuery(table string, id int64) (string, []any, error) {
	return toSQL(psql.Delete(table).Where(sq.Eq{"id": id}))
}
