package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

type userService struct {
	userRepository    store.UserRepository
	credentialService CredentialService

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, credentialService CredentialService, logger *logger.Logger) UserService {
	return &userService{
		userRepository:    userRepository,
		credentialService: credentialService,
		logger:            logger,
	}
}

// ListUsers returns every user, or the single user matching filter.Username.
// A filtered miss returns an empty slice and store.ErrUserNotFound.
func (u *userService) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	if filter.Username == "" {
		return u.userRepository.ListUsers(ctx)
	}

	user, err := u.userRepository.FindUserByUsername(ctx, filter.Username)
	if err != nil {
		return []models.User{}, fmt.Errorf("error finding user by username: %w", err)
	}

	return []models.User{user}, nil
}

// CreateUser rejects taken names before any key material is generated, then
// delegates to the CredentialService.
func (u *userService) CreateUser(ctx context.Context, username string) (models.User, string, error) {
	if err := u.ensureUsernameFree(ctx, username, 0); err != nil {
		return models.User{}, "", err
	}

	return u.credentialService.Issue(ctx, username)
}

func (u *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return u.userRepository.GetUserByID(ctx, userID)
}

// UpdateUser renames the record. Only its owner may do so, and the new name
// must not belong to another user. A missing new name leaves the record as is.
func (u *userService) UpdateUser(ctx context.Context, update models.UserUpdate, full bool) (models.User, error) {
	existing, err := u.userRepository.GetUserByID(ctx, update.UserID)
	if err != nil {
		return models.User{}, err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return models.User{}, err
	}

	if update.Username == nil || *update.Username == existing.Username {
		return existing, nil
	}

	if err = u.ensureUsernameFree(ctx, *update.Username, existing.UserID); err != nil {
		return models.User{}, err
	}

	updated, err := u.userRepository.UpdateUsername(ctx, existing.UserID, *update.Username)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContextOr(ctx, u.logger).Info().Str("func", "*userService.UpdateUser").
		Int64("user_id", existing.UserID).Str("old_username", existing.Username).Str("username", updated.Username).
		Msg("user renamed")
	return updated, nil
}

// DeleteUser removes the record together with its videos and comments.
func (u *userService) DeleteUser(ctx context.Context, userID int64) error {
	existing, err := u.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err = checkOwnership(ctx, existing.UserID); err != nil {
		return err
	}

	if err = u.userRepository.DeleteUser(ctx, existing.UserID); err != nil {
		return err
	}

	logger.FromContextOr(ctx, u.logger).Info().Str("func", "*userService.DeleteUser").
		Int64("user_id", existing.UserID).Msg("user deleted with videos and comments")
	return nil
}

// ensureUsernameFree fails with store.ErrUsernameAlreadyExists when username
// belongs to a user other than exceptID.
func (u *userService) ensureUsernameFree(ctx context.Context, username string, exceptID int64) error {
	found, err := u.userRepository.FindUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("error checking username: %w", err)
	case found.UserID != exceptID:
		logger.FromContextOr(ctx, u.logger).Debug().Str("func", "*userService.ensureUsernameFree").Str("username", username).Msg("username is taken")
		return store.ErrUsernameAlreadyExists
	default:
		return nil
	}
}
