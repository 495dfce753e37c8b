package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/mock"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/internal/validators"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// helpers
// ─────────────────────────────────────────────

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-user-bff-test",
	TokenDuration: time.Hour,
}

type authFixture struct {
	svc    AuthService
	repo   *mock.MockUserRepository
	hasher *mock.MockPasswordHasher
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	return authFixture{
		svc:    NewAuthService(repo, hasher, validators.NewUserValidator(), testAppConfig, logger.Nop()),
		repo:   repo,
		hasher: hasher,
	}
}

func storedUser() models.User {
	return models.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "a@x.com",
		Password: "stored-hash",
	}
}

// ─────────────────────────────────────────────
// SignIn
// ─────────────────────────────────────────────

func TestSignIn_Success(t *testing.T) {
	f := newAuthFixture(t)
	user := storedUser()

	f.repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(user, nil)
	f.hasher.EXPECT().Verify("password123", "stored-hash").Return(true, nil)

	resp, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "a@x.com", Password: "password123"})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)

	parsed, err := utils.ValidateAndParseJWTToken(resp.Token, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, parsed.UserID)
}

func TestSignIn_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	f.repo.EXPECT().FindByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "ghost@x.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrUserNotFound)
}

func TestSignIn_WrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	f.repo.EXPECT().FindByEmail(gomock.Any(), "a@x.com").Return(storedUser(), nil)
	f.hasher.EXPECT().Verify("wrong-password", "stored-hash").Return(false, nil)

	_, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "a@x.com", Password: "wrong-password"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{name: "empty", credentials: models.Credentials{}},
		{name: "email without at", credentials: models.Credentials{Email: "ax.com", Password: "password123"}},
		{name: "empty password", credentials: models.Credentials{Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)

			_, err := f.svc.SignIn(context.Background(), tt.credentials)

			assert.ErrorIs(t, err, store.ErrInvalidData)
		})
	}
}

func TestSignIn_RepositoryFailure(t *testing.T) {
	f := newAuthFixture(t)

	f.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrDatabase)

	_, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "a@x.com", Password: "password123"})

	assert.ErrorIs(t, err, store.ErrDatabase)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignIn_VerifyFailure(t *testing.T) {
	f := newAuthFixture(t)

	f.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(storedUser(), nil)
	f.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(false, errors.New("hash too short"))

	_, err := f.svc.SignIn(context.Background(), models.Credentials{Email: "a@x.com", Password: "password123"})

	assert.ErrorIs(t, err, store.ErrPassword)
	assert.ErrorIs(t, err, store.ErrDatabase)
}

// ─────────────────────────────────────────────
// Check
// ─────────────────────────────────────────────

func TestCheck_ValidToken(t *testing.T) {
	f := newAuthFixture(t)
	user := storedUser()

	token, err := f.svc.CreateToken(context.Background(), user)
	require.NoError(t, err)

	f.repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)

	got, err := f.svc.Check(context.Background(), token.String())

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestCheck_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Check(context.Background(), "not-a-token")

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCheck_UserDeleted(t *testing.T) {
	f := newAuthFixture(t)
	user := storedUser()

	token, err := f.svc.CreateToken(context.Background(), user)
	require.NoError(t, err)

	f.repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(models.User{}, store.ErrUserNotFound)

	_, err = f.svc.Check(context.Background(), token.String())

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// tokens
// ─────────────────────────────────────────────

func TestParseToken_WrongIssuer(t *testing.T) {
	f := newAuthFixture(t)
	user := storedUser()

	token, err := utils.GenerateJWTToken("someone-else", user.ID, time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = f.svc.ParseToken(context.Background(), token.String())

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	f := newAuthFixture(t)

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, uuid.New(), -time.Minute, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	_, err = f.svc.ParseToken(context.Background(), token.String())

	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateToken_NilUserID(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.CreateToken(context.Background(), models.User{})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestSignOut(t *testing.T) {
	f := newAuthFixture(t)

	resp := f.svc.SignOut(context.Background())

	assert.Equal(t, "Successfully signed out", resp.Message)
}
