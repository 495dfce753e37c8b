package service

import (
	"context"

	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/models"
	"github.com/google/uuid"
)

// userService is the pass-through implementation of UserService.
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.FindAll(ctx)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (models.User, error) {
	return s.userRepository.FindByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, input models.NewUser) (models.User, error) {
	return s.userRepository.Create(ctx, input)
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, input models.NewUser) (models.User, error) {
	return s.userRepository.Update(ctx, id, input)
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.userRepository.Delete(ctx, id)
}
