package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a user with the same e-mail is
	// already stored.
	ErrUserAlreadyExists = errors.New("user with email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRoleAlreadyExists is returned when a role with the same title is
	// already stored.
	ErrRoleAlreadyExists = errors.New("role already exists")

	// ErrRoleNotFound is returned when no role matches the lookup.
	ErrRoleNotFound = errors.New("no role was found")

	// ErrRoleInUse is returned when a role cannot be deleted because users
	// still reference it.
	ErrRoleInUse = errors.New("role is assigned to users")

	// ErrDocumentAlreadyExists is returned when a document with the same
	// title is already stored.
	ErrDocumentAlreadyExists = errors.New("document with title already exists")

	// ErrDocumentNotFound is returned when no document matches the lookup.
	ErrDocumentNotFound = errors.New("no document was found")

	// ErrReferenceNotFound is returned when a foreign key points to a row
	// that does not exist (for example, an unknown role id).
	ErrReferenceNotFound = errors.New("referenced row does not exist")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
