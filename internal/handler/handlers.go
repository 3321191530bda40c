package handler

import (
	"github.com/MKhiriev/go-tenant-gateway/internal/config"
	"github.com/MKhiriev/go-tenant-gateway/internal/handler/http"
	"github.com/MKhiriev/go-tenant-gateway/internal/logger"
	"github.com/MKhiriev/go-tenant-gateway/internal/pipeline"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(p *pipeline.Pipeline, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if p == nil {
		return nil, errNoPipeline
	}

	return &Handlers{
		HTTP: http.NewHandler(p, cfg, logger),
	}, nil
}
