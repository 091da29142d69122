package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmptyText        = fmt.Errorf("%w: text field is required", ErrInvalidInput)
	ErrNoUsableText     = fmt.Errorf("%w: no usable text after merging image and text", ErrInvalidInput)
	ErrOCRUnavailable   = errors.New("ocr api key is not configured")
	ErrOCRProcessing    = errors.New("ocr provider failed to process image")
	ErrModelUnavailable = errors.New("classification model is not loaded")
	ErrFileTooLarge     = errors.New("file exceeds maximum allowed size")
)

// OCRProcessingError carries the provider's diagnostic text when it reports
// IsErroredOnProcessing.
type OCRProcessingError struct {
	Details string
}

func (e *OCRProcessingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrOCRProcessing, e.Details)
}

func (e *OCRProcessingError) Unwrap() error {
	return ErrOCRProcessing
}
