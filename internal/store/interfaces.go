package store

import (
	"context"

	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the single abstraction over user persistence.
//
// Reads never open a transaction. Create, Update and Delete each run inside
// their own remote transaction: begin, one mutation, commit; a failed
// mutation triggers a best-effort rollback.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Create(ctx context.Context, input models.NewUser) (models.User, error)
	Update(ctx context.Context, id uuid.UUID, input models.NewUser) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IDGenerator issues identifiers for new users.
type IDGenerator interface {
	Generate() uuid.UUID
}
