// Package model loads and evaluates the fitted text vectorizer and spam
// classifier.
package model

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"spamlens/internal/port"
)

// Load reads the manifest, then both artifacts concurrently. Either both load
// and agree, or an error is returned and nothing is kept.
func Load(ctx context.Context, store port.ArtifactStore, manifestName string) (*Pair, error) {
	raw, err := store.Read(ctx, manifestName)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := ParseManifest(raw)
	if err != nil {
		return nil, err
	}

	var (
		vec *Vectorizer
		clf *Classifier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data, err := store.Read(gctx, m.Vectorizer)
		if err != nil {
			return fmt.Errorf("reading vectorizer %s: %w", m.Vectorizer, err)
		}
		vec, err = ParseVectorizer(data)
		return err
	})
	g.Go(func() error {
		data, err := store.Read(gctx, m.Classifier)
		if err != nil {
			return fmt.Errorf("reading classifier %s: %w", m.Classifier, err)
		}
		clf, err = ParseClassifier(data)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPair(m.Version, vec, clf)
}
