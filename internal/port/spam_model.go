package port

import "spamlens/internal/domain"

// SpamModel is the fitted feature extractor and classifier, versioned as a pair.
// Implementations are immutable and safe for concurrent use.
type SpamModel interface {
	Transform(text string) domain.FeatureVector
	Predict(vec domain.FeatureVector) int
	// PredictProbability returns the probability of the spam class.
	PredictProbability(vec domain.FeatureVector) float64
}
