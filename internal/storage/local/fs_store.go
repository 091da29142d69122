package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spamlens/internal/port"
)

type fsStore struct {
	root string
}

// NewFSStore creates an ArtifactStore reading from a directory on local disk.
func NewFSStore(root string) port.ArtifactStore {
	return &fsStore{root: root}
}

func (s *fsStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	clean := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return nil, fmt.Errorf("artifact path %q escapes store root", name)
	}
	data, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		return nil, fmt.Errorf("local read: %w", err)
	}
	return data, nil
}
