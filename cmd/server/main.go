package main

import (
	"fmt"

	"github.com/MKhiriev/go-user-bff/internal/adapter"
	"github.com/MKhiriev/go-user-bff/internal/config"
	"github.com/MKhiriev/go-user-bff/internal/crypto"
	handler "github.com/MKhiriev/go-user-bff/internal/handler/http"
	"github.com/MKhiriev/go-user-bff/internal/logger"
	"github.com/MKhiriev/go-user-bff/internal/server"
	"github.com/MKhiriev/go-user-bff/internal/service"
	"github.com/MKhiriev/go-user-bff/internal/store"
	"github.com/MKhiriev/go-user-bff/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("go-user-bff", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("go-user-bff", cfg.App.LogLevel)
	log.Debug().
		Str("remote_url", cfg.Remote.URL).
		Str("address", cfg.Server.HTTPAddress).
		Msg("received configs")

	remote, err := adapter.NewHTTPRemoteStore(cfg.Remote, log.GetChildLogger())
	if err != nil {
		log.Fatal().Err(err).Msg("error creating remote store client")
	}

	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)
	repositories := store.NewRepositories(remote, hasher, cfg.Remote, log.GetChildLogger())
	services := service.NewServices(repositories, hasher, *cfg, log.GetChildLogger())

	h := handler.NewHandler(services, cfg.Server, buildInfo, log)

	srv, err := server.NewServer(h.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
