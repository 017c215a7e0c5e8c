package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when inserting or renaming a user
	// collides with the unique username index.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrVideoURLAlreadyExists is returned when inserting or updating a video
	// collides with the unique url index.
	ErrVideoURLAlreadyExists = errors.New("video url already exists")

	// ErrVideoNotFound is returned when no video matches the given id, or when
	// a filtered listing matches nothing.
	ErrVideoNotFound = errors.New("video not found")

	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrCityNotFound is returned when no city matches the given id.
	ErrCityNotFound = errors.New("city not found")

	// ErrReferenceNotFound is returned when a write violates a foreign key,
	// i.e. the referenced user, video or city disappeared between the
	// service-level lookup and the write.
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails for a reason that has no domain meaning.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown
	// database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
