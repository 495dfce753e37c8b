package service

import (
	"context"

	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService is the boundary-facing user API. Every method delegates to the
// repository and returns its errors unchanged.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (models.User, error)
	CreateUser(ctx context.Context, input models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input models.NewUser) (models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type AuthService interface {
	SignIn(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	Check(ctx context.Context, token string) (models.User, error)
	SignOut(ctx context.Context) models.MessageResponse
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, token string) (models.Token, error)
}
