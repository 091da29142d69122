package port

import (
	"context"

	"spamlens/internal/domain"
)

// OCRRequest carries a single image submission to an OCR provider.
type OCRRequest struct {
	Image    []byte
	FileName string
	MimeType string
	Language string
}

// OCRResult is the provider's structured response.
type OCRResult struct {
	IsErroredOnProcessing bool
	ParsedTexts           []string
	ErrorMessage          string
	ErrorDetails          string
}

// OCRClient abstracts the external OCR provider. One call, no retry.
type OCRClient interface {
	Submit(ctx context.Context, req OCRRequest) (*OCRResult, error)
}

// TextExtractor recovers text from an uploaded image.
type TextExtractor interface {
	ExtractText(ctx context.Context, img domain.ImageUpload) (string, error)
}
