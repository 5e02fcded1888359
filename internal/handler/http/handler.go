package http

import (
	"github.com/MKhiriev/go-wiki-sync/internal/app"
	"github.com/MKhiriev/go-wiki-sync/internal/logger"
)

// CollectionResolver hands out the per-wiki runtime behind every route.
// *app.Manager is the production implementation.
type CollectionResolver interface {
	Collection(name string) (*app.Collection, error)
}

type Handler struct {
	collections CollectionResolver
	version     string

	logger *logger.Logger
}

func NewHandler(collections CollectionResolver, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		collections: collections,
		version:     version,
		logger:      logger,
	}
}
