package http

import (
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/service"
	"github.com/MKhiriev/go-user-bff/models"
)

type Handler struct {
	services  *service.Services
	cfg       config.Server
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
