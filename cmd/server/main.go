package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tenant-gateway/internal/auth"
	"github.com/MKhiriev/go-tenant-gateway/internal/config"
	"github.com/MKhiriev/go-tenant-gateway/internal/handler"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/MKhiriev/go-tenant-gateway/internal/ratelimit"
	"github.com/MKhiriev/go-tenant-gateway/internal/server"
	"github.com/MKhiriev/go-tenant-gateway/internal/store"
	"github.com/MKhiriev/go-tenant-gateway/internal/telemetry"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.App.Name, cfg.App.LogLevel)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(cfg.Telemetry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error initializing tracing")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Err(err).Msg("error shutting down tracing")
		}
	}()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if cfg.Storage.DB.Migrate {
		if err = db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("error applying migrations")
		}
		log.Info().Msg("migrations applied")
	}

	keys, err := auth.NewJWKSProvider(ctx, cfg.Auth.JWKSURL, cfg.Auth.JWKSCacheTTL, cfg.Auth.JWKSFetchTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating key set provider")
	}
	verifier, err := auth.NewTokenVerifier(cfg.Auth, keys)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token verifier")
	}

	limiter, err := ratelimit.NewFixedWindow(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating rate limiter")
	}

	p, err := pipeline.New(pipeline.Deps{
		DB:       db,
		Verifier: verifier,
		Limiter:  limiter,
		Bind:     pipeline.StoreBinder,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating request pipeline")
	}

	handlers, err := handler.NewHandlers(p, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
