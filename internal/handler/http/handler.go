package http

import (
	"time"

	"github.com/MKhiriev/go-tenant-gateway/internal/config"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
	"github.com/MKhiriev/go-tenant-gateway/internal/utils"
)

type Handler struct {
	pipeline *pipeline.Pipeline
	ids      *utils.UUIDGenerator

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(p *pipeline.Pipeline, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		pipeline:       p,
		ids:            utils.NewUUIDGenerator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
