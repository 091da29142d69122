package service

import (
	"context"
	"log"
	"math"
	"strings"

	"spamlens/internal/domain"
	"spamlens/internal/port"
	"spamlens/internal/textnorm"
)

// ClassifyAllInput is the DTO for multi-modal classification requests.
type ClassifyAllInput struct {
	Text  string
	Image *domain.ImageUpload
}

// ClassificationService defines the spam decision contract.
type ClassificationService interface {
	// ClassifyText returns a label only; no probability is computed.
	ClassifyText(ctx context.Context, text string) (*domain.TextDecision, error)
	// ClassifyAll runs OCR on an attached image, merges its text with the
	// supplied text, and returns label, merged text and spam probability.
	ClassifyAll(ctx context.Context, input ClassifyAllInput) (*domain.Decision, error)
}

type classificationService struct {
	model     port.SpamModel
	extractor port.TextExtractor
}

// NewClassificationService creates a new ClassificationService. A nil model
// means the artifacts failed to load; classification then fails with
// domain.ErrModelUnavailable while the service keeps running.
func NewClassificationService(model port.SpamModel, extractor port.TextExtractor) ClassificationService {
	return &classificationService{
		model:     model,
		extractor: extractor,
	}
}

func (s *classificationService) ClassifyText(ctx context.Context, text string) (*domain.TextDecision, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}
	if s.model == nil {
		return nil, domain.ErrModelUnavailable
	}

	vec := s.model.Transform(text)
	return &domain.TextDecision{Label: domain.LabelFromPrediction(s.model.Predict(vec))}, nil
}

func (s *classificationService) ClassifyAll(ctx context.Context, input ClassifyAllInput) (*domain.Decision, error) {
	var extracted string
	if input.Image != nil {
		text, err := s.extractor.ExtractText(ctx, *input.Image)
		if err != nil {
			log.Printf("classificationService.ClassifyAll: ocr failed for %q: %v", input.Image.FileName, err)
			return nil, err
		}
		extracted = text
	}

	merged := textnorm.Merge(extracted, input.Text)
	if merged == "" {
		return nil, domain.ErrNoUsableText
	}
	if s.model == nil {
		return nil, domain.ErrModelUnavailable
	}

	vec := s.model.Transform(merged)
	pred := s.model.Predict(vec)
	score := s.model.PredictProbability(vec)

	decision := &domain.Decision{
		Label: domain.LabelFromPrediction(pred),
		Text:  merged,
		Score: roundScore(score),
	}
	log.Printf("classificationService.ClassifyAll: label=%s score=%.4f image=%t chars=%d",
		decision.Label, decision.Score, input.Image != nil, len([]rune(merged)))
	return decision, nil
}

func roundScore(p float64) float64 {
	return math.Round(p*1e4) / 1e4
}
