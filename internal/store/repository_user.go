// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-bff/internal/adapter"
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/crypto"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/validators"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
)

const (
	operationCreate = "create"
	operationUpdate = "update"
	operationDelete = "delete"
)

// userRepository is the [UserRepository] backed by the remote REST store.
//
// Reads go straight to the store. Writes are validated, have their password
// hashed, and only then open a transaction, so no local failure ever leaves
// a transaction open.
type userRepository struct {
	remote    adapter.RemoteStore
	tx        *transactor
	hasher    crypto.PasswordHasher
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] on top of remote.
// The commit retry policy is taken from remoteCfg.
func NewUserRepository(
	remote adapter.RemoteStore,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	ids IDGenerator,
	remoteCfg config.Remote,
	logger *logger.Logger,
) UserRepository {
	logger.Debug().Msg("creating user repository")

	retries := remoteCfg.CommitRetryCount()
	if retries < 0 {
		retries = 0
	}

	return &userRepository{
		remote: remote,
		tx: newTransactor(remote, commitPolicy{
			retries: uint64(retries),
			delay:   remoteCfg.CommitRetryDelay,
		}, logger),
		hasher:    hasher,
		validator: validator,
		ids:       ids,
		now:       time.Now,
		logger:    logger,
	}
}

// FindAll returns every user of the collection; an empty collection yields
// an empty, non-nil slice.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	resp, err := r.remote.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrDatabase, err)
	}

	return decodeUsers(resp.Body)
}

// FindByID returns the user with the given id, or [ErrUserNotFound] when the
// store holds no such row.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	resp, err := r.remote.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get user %s: %w", ErrDatabase, id, err)
	}

	return firstUser(resp.Body)
}

// FindByEmail returns the user registered with email, or [ErrUserNotFound].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	resp, err := r.remote.List(ctx, adapter.Eq("email", email))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: find user by email: %w", ErrDatabase, err)
	}

	return firstUser(resp.Body)
}

// Create validates input, hashes its password, and inserts a new user with a
// freshly generated id inside one remote transaction.
func (r *userRepository) Create(ctx context.Context, input models.NewUser) (models.User, error) {
	if err := r.validate(ctx, input); err != nil {
		return models.User{}, err
	}

	passwordHash, err := r.hashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	now := models.NewTimestamp(r.now())
	user := models.User{
		ID:        r.ids.Generate(),
		Username:  input.Username,
		Email:     input.Email,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	resp, err := r.tx.run(ctx, operationCreate, func(ctx context.Context, tx models.TransactionHandle) (adapter.Response, error) {
		return r.remote.Insert(ctx, tx, user)
	})
	if err != nil {
		return models.User{}, err
	}

	created, err := decodeUsers(resp.Body)
	if err != nil {
		return models.User{}, err
	}
	if len(created) == 0 {
		return models.User{}, fmt.Errorf("%w: user creation failed", ErrDatabase)
	}

	return created[0], nil
}

// Update replaces username, email and password of an existing user and
// re-stamps updated_at. A missing user is reported before any transaction
// is opened.
func (r *userRepository) Update(ctx context.Context, id uuid.UUID, input models.NewUser) (models.User, error) {
	if err := r.validate(ctx, input); err != nil {
		return models.User{}, err
	}

	existing, err := r.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	passwordHash, err := r.hashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	// updated_at never precedes created_at, even under clock skew.
	updatedAt := models.NewTimestamp(r.now())
	if updatedAt.Before(existing.CreatedAt.Time) {
		updatedAt = existing.CreatedAt
	}
	patch := userPatch(input, passwordHash, updatedAt)

	resp, err := r.tx.run(ctx, operationUpdate, func(ctx context.Context, tx models.TransactionHandle) (adapter.Response, error) {
		return r.remote.Patch(ctx, tx, id, patch)
	})
	if err != nil {
		return models.User{}, err
	}

	updated, err := decodeUsers(resp.Body)
	if err != nil {
		return models.User{}, err
	}
	if len(updated) == 0 {
		// deleted between the existence check and the patch
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, id)
	}

	return updated[0], nil
}

// Delete hard-deletes an existing user. A missing user is reported before any
// transaction is opened.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.FindByID(ctx, id); err != nil {
		return err
	}

	_, err := r.tx.run(ctx, operationDelete, func(ctx context.Context, tx models.TransactionHandle) (adapter.Response, error) {
		return r.remote.Remove(ctx, tx, id)
	})

	return err
}

func (r *userRepository) validate(ctx context.Context, input models.NewUser) error {
	if err := r.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return nil
}

func (r *userRepository) hashPassword(plaintext string) (string, error) {
	hash, err := r.hasher.Hash(plaintext)
	if err != nil {
		return "", fmt.Errorf("%w: %w: %v", ErrDatabase, ErrPassword, err)
	}
	return hash, nil
}

func firstUser(body []byte) (models.User, error) {
	users, err := decodeUsers(body)
	if err != nil {
		return models.User{}, err
	}
	if len(users) == 0 {
		return models.User{}, ErrUserNotFound
	}
	return users[0], nil
}
