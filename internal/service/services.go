package service

import (
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/crypto"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/internal/validators"
)

type Services struct {
	UserService UserService
	AuthService AuthService
}

func NewServices(repositories *store.Repositories, hasher crypto.PasswordHasher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		UserService: NewUserService(repositories.UserRepository, logger),
		AuthService: NewAuthService(repositories.UserRepository, hasher, validators.NewUserValidator(), cfg.App, logger),
	}
}
