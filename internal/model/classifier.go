package model

import (
	"encoding/json"
	"fmt"
	"math"

	"spamlens/internal/domain"
)

const (
	KindLogisticRegression = "logistic_regression"
	KindMultinomialNB      = "multinomial_nb"
)

// classifierFile is the on-disk form of a fitted binary classifier.
type classifierFile struct {
	Version        string      `json:"version"`
	Kind           string      `json:"kind"`
	Classes        []int       `json:"classes"`
	NFeatures      int         `json:"n_features"`
	Coef           []float64   `json:"coef"`
	Intercept      float64     `json:"intercept"`
	ClassLogPrior  []float64   `json:"class_log_prior"`
	FeatureLogProb [][]float64 `json:"feature_log_prob"`
}

// Classifier is a fitted binary linear model over sparse feature vectors.
type Classifier struct {
	version   string
	kind      string
	classes   [2]int
	spamIdx   int
	nFeatures int

	// logistic regression
	coef      []float64
	intercept float64

	// multinomial naive Bayes
	classLogPrior  []float64
	featureLogProb [][]float64
}

// ParseClassifier decodes and validates a classifier artifact.
func ParseClassifier(data []byte) (*Classifier, error) {
	var f classifierFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding classifier: %w", err)
	}

	if len(f.Classes) != 2 || f.Classes[0] == f.Classes[1] {
		return nil, fmt.Errorf("classifier must have exactly two distinct classes, got %v", f.Classes)
	}
	c := &Classifier{
		version:   f.Version,
		kind:      f.Kind,
		classes:   [2]int{f.Classes[0], f.Classes[1]},
		nFeatures: f.NFeatures,
		spamIdx:   -1,
	}
	for i, cls := range c.classes {
		if cls == domain.SpamClass {
			c.spamIdx = i
		}
	}
	if c.spamIdx < 0 {
		return nil, fmt.Errorf("classifier classes %v do not include spam class %d", f.Classes, domain.SpamClass)
	}
	if c.nFeatures <= 0 {
		return nil, fmt.Errorf("classifier n_features must be positive, got %d", f.NFeatures)
	}

	switch f.Kind {
	case KindLogisticRegression:
		if len(f.Coef) != c.nFeatures {
			return nil, fmt.Errorf("coef has %d weights, expected %d", len(f.Coef), c.nFeatures)
		}
		c.coef = f.Coef
		c.intercept = f.Intercept
	case KindMultinomialNB:
		if len(f.ClassLogPrior) != 2 || len(f.FeatureLogProb) != 2 {
			return nil, fmt.Errorf("naive bayes parameters must cover two classes")
		}
		for k, row := range f.FeatureLogProb {
			if len(row) != c.nFeatures {
				return nil, fmt.Errorf("feature_log_prob[%d] has %d weights, expected %d", k, len(row), c.nFeatures)
			}
		}
		c.classLogPrior = f.ClassLogPrior
		c.featureLogProb = f.FeatureLogProb
	default:
		return nil, fmt.Errorf("unsupported classifier kind %q", f.Kind)
	}

	return c, nil
}

// Version returns the fitted artifact version.
func (c *Classifier) Version() string { return c.version }

// Kind returns the model family.
func (c *Classifier) Kind() string { return c.kind }

// NumFeatures returns the dimension the classifier was fitted against.
func (c *Classifier) NumFeatures() int { return c.nFeatures }

// Predict returns the predicted class label.
func (c *Classifier) Predict(vec domain.FeatureVector) int {
	if c.kind == KindLogisticRegression {
		if c.decision(vec) > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}
	jll := c.jointLogLikelihood(vec)
	if jll[1] > jll[0] {
		return c.classes[1]
	}
	return c.classes[0]
}

// PredictProbability returns the probability of the spam class.
func (c *Classifier) PredictProbability(vec domain.FeatureVector) float64 {
	var proba [2]float64
	if c.kind == KindLogisticRegression {
		p := sigmoid(c.decision(vec))
		proba = [2]float64{1 - p, p}
	} else {
		jll := c.jointLogLikelihood(vec)
		hi := math.Max(jll[0], jll[1])
		e0, e1 := math.Exp(jll[0]-hi), math.Exp(jll[1]-hi)
		proba = [2]float64{e0 / (e0 + e1), e1 / (e0 + e1)}
	}
	return proba[c.spamIdx]
}

func (c *Classifier) decision(vec domain.FeatureVector) float64 {
	return dot(c.coef, vec) + c.intercept
}

func (c *Classifier) jointLogLikelihood(vec domain.FeatureVector) [2]float64 {
	return [2]float64{
		c.classLogPrior[0] + dot(c.featureLogProb[0], vec),
		c.classLogPrior[1] + dot(c.featureLogProb[1], vec),
	}
}

func dot(weights []float64, vec domain.FeatureVector) float64 {
	var sum float64
	for i, idx := range vec.Indices {
		if idx < len(weights) {
			sum += weights[idx] * vec.Values[i]
		}
	}
	return sum
}

func sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)
	return e / (1 + e)
}
