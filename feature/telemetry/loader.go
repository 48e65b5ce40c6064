package telemetry

import (
	"bas-manager/core/dataset"
	"bas-manager/core/storage"
	"bas-manager/core/timeseries"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Telemetry feature.
func NewFeature(client storage.Client, bucket string, data dataset.Config, writer timeseries.Writer, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, data, writer, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "telemetry"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for command-line use.
func (f *Feature) Service() *Service {
	return f.service
}
