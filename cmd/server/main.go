package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-wiki-sync/internal/app"
	"github.com/MKhiriev/go-wiki-sync/internal/config"
	"github.com/MKhiriev/go-wiki-sync/internal/handler/http"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
	"github.com/MKhiriev/go-wiki-sync/internal/server"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("wiki-sync-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	manager := app.NewManager(cfg, clockwork.NewRealClock(), log)
	defer manager.CloseAll()

	// the default collection opens eagerly so its background sync starts
	// before the first editor request arrives
	if _, err = manager.Collection(app.DefaultCollection); err != nil {
		log.Fatal().Err(err).Msg("error opening default collection")
	}

	handlers := http.NewHandler(manager, buildVersion, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
