package store

import (
	"fmt"

	"github.com/MKhiriev/go-spine-client/internal/config"
	"github.com/MKhiriev/go-spine-client/internal/logger"
)

// ClientStorages groups all client-side storages into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// Images receives annotated images saved by the user.
	Images ImageStorage
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("output_dir", cfg.OutputDir).Msg("creating new storages...")

	images, err := NewFileImageStorage(cfg.OutputDir, logger)
	if err != nil {
		return nil, fmt.Errorf("image storage: %w", err)
	}

	return &ClientStorages{Images: images}, nil
}
