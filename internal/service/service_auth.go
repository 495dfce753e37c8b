// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-bff/internal/app"
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/crypto"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/metrics"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/internal/validators"
	"github.com/MKhiriev/go-user-bff/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the stored bcrypt hash and issues
// stateless HS256 bearer tokens.
type authService struct {
	// userRepository is used for the non-transactional lookups by email and id.
	userRepository store.UserRepository

	hasher    crypto.PasswordHasher
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with the token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	validator validators.Validator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignIn authenticates a user by email and password and issues a token.
//
// Returns:
//   - store.ErrInvalidData if the credentials are malformed.
//   - ErrInvalidCredentials if no user has the email or the password does
//     not match. The two cases are indistinguishable to the caller.
//   - the repository error unchanged if the lookup fails for another reason.
func (a *authService) SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		log.Debug().Err(err).Msg("invalid credentials provided")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", store.ErrInvalidData, err)
	}

	user, err := a.userRepository.FindByEmail(ctx, credentials.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("sign-in for unknown email")
		metrics.RecordSignIn(false)
		return models.AuthResponse{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.AuthResponse{}, err
	}

	ok, err := a.hasher.Verify(credentials.Password, user.Password)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("password verification failed")
		return models.AuthResponse{}, fmt.Errorf("%w: %w: %v", store.ErrDatabase, store.ErrPassword, err)
	}
	if !ok {
		log.Info().Str("user_id", user.ID.String()).Msg("wrong password")
		metrics.RecordSignIn(false)
		return models.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("user_id", user.ID.String()).Msg("token creation failed")
		return models.AuthResponse{}, err
	}

	metrics.RecordSignIn(true)

	return models.AuthResponse{
		Token: token.String(),
		User:  user.Public(),
	}, nil
}

// Check validates token and returns the user it was issued to. A token whose
// user has since been deleted yields store.ErrUserNotFound.
func (a *authService) Check(ctx context.Context, token string) (models.User, error) {
	parsed, err := a.ParseToken(ctx, token)
	if err != nil {
		return models.User{}, err
	}

	return a.userRepository.FindByID(ctx, parsed.UserID)
}

// SignOut is stateless: tokens are not tracked, so there is nothing to revoke.
func (a *authService) SignOut(ctx context.Context) models.MessageResponse {
	return models.MessageResponse{Message: app.MsgSignedOut}
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
