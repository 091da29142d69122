package model

import (
	"fmt"

	"spamlens/internal/domain"
)

// Pair is a vectorizer and the classifier fitted on its output. It
// implements port.SpamModel and is immutable once built.
type Pair struct {
	version    string
	vectorizer *Vectorizer
	classifier *Classifier
}

// NewPair checks that both artifacts carry the manifest version and agree on
// the feature dimension.
func NewPair(version string, vec *Vectorizer, clf *Classifier) (*Pair, error) {
	if vec.Version() != version || clf.Version() != version {
		return nil, fmt.Errorf("artifact version mismatch: manifest %q, vectorizer %q, classifier %q",
			version, vec.Version(), clf.Version())
	}
	if vec.Dim() != clf.NumFeatures() {
		return nil, fmt.Errorf("feature dimension mismatch: vectorizer %d, classifier %d", vec.Dim(), clf.NumFeatures())
	}
	return &Pair{version: version, vectorizer: vec, classifier: clf}, nil
}

// Version returns the version shared by both artifacts.
func (p *Pair) Version() string { return p.version }

// Kind returns the classifier family.
func (p *Pair) Kind() string { return p.classifier.Kind() }

// NumFeatures returns the feature dimension.
func (p *Pair) NumFeatures() int { return p.vectorizer.Dim() }

func (p *Pair) Transform(text string) domain.FeatureVector {
	return p.vectorizer.Transform(text)
}

func (p *Pair) Predict(vec domain.FeatureVector) int {
	return p.classifier.Predict(vec)
}

func (p *Pair) PredictProbability(vec domain.FeatureVector) float64 {
	return p.classifier.PredictProbability(vec)
}
