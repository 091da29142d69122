// Package storage selects the ArtifactStore the model loader reads from.
package storage

import (
	"fmt"

	"spamlens/internal/config"
	"spamlens/internal/port"
	"spamlens/internal/storage/local"
	s3storage "spamlens/internal/storage/s3"
)

// NewArtifactStore builds the store named by cfg.Model.Source.
func NewArtifactStore(cfg *config.Config) (port.ArtifactStore, error) {
	switch cfg.Model.Source {
	case config.ModelSourceLocal, "":
		return local.NewFSStore(cfg.Model.Dir), nil
	case config.ModelSourceS3:
		return s3storage.NewS3Store(&cfg.S3)
	default:
		return nil, fmt.Errorf("unknown model source: %s", cfg.Model.Source)
	}
}
