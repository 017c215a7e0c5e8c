// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/dashcam-catalog/internal/crypto"
	"github.com/MKhiriev/dashcam-catalog/internal/logger"
	"github.com/MKhiriev/dashcam-catalog/internal/store"
	"github.com/MKhiriev/dashcam-catalog/models"
)

// credentialService is the concrete implementation of CredentialService.
// It pairs the UserRepository with a KeyHasher; neither the plain key nor
// the stored hash is ever logged.
type credentialService struct {
	userRepository store.UserRepository
	hasher         crypto.KeyHasher

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService wired to the given
// repository and hasher.
func NewCredentialService(userRepository store.UserRepository, hasher crypto.KeyHasher, logger *logger.Logger) CredentialService {
	return &credentialService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// Issue generates a key, persists the user with the key's hash and returns
// the persisted user and the plain key.
//
// Returns:
//   - store.ErrUsernameAlreadyExists (wrapped) if the name is taken.
//   - a wrapped hasher or storage error otherwise.
func (c *credentialService) Issue(ctx context.Context, username string) (models.User, string, error) {
	log := logger.FromContextOr(ctx, c.logger)

	key, err := c.hasher.GenerateKey()
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Issue").Msg("error generating api key")
		return models.User{}, "", fmt.Errorf("error generating api key: %w", err)
	}

	hash, err := c.hasher.Hash(key)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Issue").Msg("error hashing api key")
		return models.User{}, "", fmt.Errorf("error hashing api key: %w", err)
	}

	user, err := c.userRepository.CreateUser(ctx, models.User{Username: username, KeyHash: hash})
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Issue").Str("username", username).Msg("user creation ended with error")
		return models.User{}, "", fmt.Errorf("user creation ended with error: %w", err)
	}

	return user, key, nil
}

// Verify fails closed: an unknown user, an empty key, a malformed stored
// hash and a mismatch all return ErrInvalidCredential. Only storage
// failures other than "not found" are returned as-is (wrapped).
func (c *credentialService) Verify(ctx context.Context, username, apiKey string) (models.User, error) {
	log := logger.FromContextOr(ctx, c.logger)

	if username == "" || apiKey == "" {
		return models.User{}, ErrInvalidCredential
	}

	user, err := c.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Str("func", "*credentialService.Verify").Str("username", username).Msg("unknown username")
		return models.User{}, ErrInvalidCredential
	}
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Verify").Str("username", username).Msg("error looking up user")
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	ok, err := c.hasher.Compare(user.KeyHash, apiKey)
	if err != nil {
		log.Err(err).Str("func", "*credentialService.Verify").Int64("user_id", user.UserID).Msg("stored key hash is unusable")
		return models.User{}, ErrInvalidCredential
	}
	if !ok {
		log.Debug().Str("func", "*credentialService.Verify").Int64("user_id", user.UserID).Msg("api key mismatch")
		return models.User{}, ErrInvalidCredential
	}

	return user, nil
}
