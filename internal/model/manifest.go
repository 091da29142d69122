package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest pins a vectorizer and classifier fitted together.
type Manifest struct {
	Version    string `yaml:"version"`
	Vectorizer string `yaml:"vectorizer"`
	Classifier string `yaml:"classifier"`
}

// ParseManifest decodes a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	switch {
	case m.Version == "":
		return nil, fmt.Errorf("manifest version is required")
	case m.Vectorizer == "":
		return nil, fmt.Errorf("manifest vectorizer is required")
	case m.Classifier == "":
		return nil, fmt.Errorf("manifest classifier is required")
	}
	return &m, nil
}
