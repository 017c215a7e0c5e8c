package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation, lookup, rename and removal against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions. The key hash
// is never logged.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a new user and returns it with the store-assigned id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error inserting user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return user, nil
}

// GetUserByID returns the user with the given id or [ErrUserNotFound].
func (r *userRepository) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.getOne(ctx, "*userRepository.GetUserByID", sq.Eq{"id": userID})
}

// FindUserByUsername returns the user with exactly this username or
// [ErrUserNotFound]. The lookup hits the unique username index.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.getOne(ctx, "*userRepository.FindUserByUsername", sq.Eq{"username": username})
}

func (r *userRepository) getOne(ctx context.Context, funcName string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder, where)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error building query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID, &user.Username, &user.KeyHash)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("error scanning user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// ListUsers returns every user ordered by id.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(r.db.builder, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(&user.UserID, &user.Username, &user.KeyHash); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// UpdateUsername renames the user and returns the stored record.
func (r *userRepository) UpdateUsername(ctx context.Context, userID int64, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUsernameQuery(r.db.builder, userID, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUsername").Msg("error building query")
		return models.User{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUsername").Int64("user_id", userID).Msg("error updating user")

		switch r.db.classify(err) {
		case UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = expectAffected(result, ErrUserNotFound); err != nil {
		return models.User{}, err
	}

	return r.GetUserByID(ctx, userID)
}

// DeleteUser removes the user. Videos and comments go with it through the
// ON DELETE CASCADE foreign keys.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteByIDQuery(r.db.builder, models.User{}.TableName(), userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Int64("user_id", userID).Msg("error deleting user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return expectAffected(result, ErrUserNotFound)
}

// expectAffected returns notFound when the statement touched no rows.
func expectAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
