package main

import (
	"fmt"
	"os"

	"github.com/nurpe/vendor-onboarding/internal/catalog"
	"github.com/nurpe/vendor-onboarding/internal/config"
	"github.com/nurpe/vendor-onboarding/internal/db"
	httphandler "github.com/nurpe/vendor-onboarding/internal/http"
	"github.com/nurpe/vendor-onboarding/internal/logger"
	"github.com/nurpe/vendor-onboarding/internal/repository"
	"github.com/nurpe/vendor-onboarding/internal/service"
	"github.com/nurpe/vendor-onboarding/internal/submissionlog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	sinks := []submissionlog.Sink{submissionlog.NewFileSink(cfg.Submission.LogPath)}
	if cfg.DB.DSN != "" {
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		sinks = append(sinks, submissionlog.NewDatabaseSink(repository.NewSubmissionRepository(database)))
	}
	trail := submissionlog.New(log, sinks...)

	catalogClient := catalog.NewClient(catalog.Config{
		BaseURL:       cfg.Catalog.BaseURL,
		CatalogItemID: cfg.Catalog.CatalogItemID,
		Username:      cfg.Catalog.Username,
		Password:      cfg.Catalog.Password,
		Timeout:       cfg.Catalog.Timeout,
	})
	onboardingService := service.NewOnboardingService(catalogClient, trail, log)

	handler := httphandler.NewHandler(onboardingService, cfg.Submission.UploadDir, log)
	router := httphandler.NewRouter(handler, cfg.HTTP.AllowedOrigins, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Int("sinks", len(sinks)).Msg("starting vendor onboarding service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
