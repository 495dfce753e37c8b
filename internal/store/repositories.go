package store

import (
	"github.com/MKhiriev/go-user-bff/internal/adapter"
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/crypto"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/utils"
	"github.com/MKhiriev/go-user-bff/internal/validators"
)

// Repositories groups the repositories of the service.
type Repositories struct {
	UserRepository UserRepository
}

// NewRepositories wires the repositories on top of the remote store.
func NewRepositories(remote adapter.RemoteStore, hasher crypto.PasswordHasher, remoteCfg config.Remote, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(remote, hasher, validators.NewUserValidator(), utils.NewUUIDGenerator(), remoteCfg, logger),
	}
}
