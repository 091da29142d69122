package port

import "context"

// ArtifactStore reads named model artifacts from backing storage.
type ArtifactStore interface {
	Read(ctx context.Context, name string) ([]byte, error)
}
