// Package ocr turns uploaded images into text through an external OCR provider.
package ocr

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"spamlens/internal/domain"
	"spamlens/internal/port"
)

// LanguageTraditionalChinese is the only recognition language requested.
const LanguageTraditionalChinese = "cht"

const (
	defaultExt  = ".jpg"
	defaultMime = "image/jpeg"
)

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".bmp":  "image/bmp",
	".gif":  "image/gif",
}

// ResolveImageType maps a file name to the extension and MIME type sent to the
// provider. Unknown or missing extensions fall back to JPEG.
func ResolveImageType(filename string) (ext, mime string) {
	ext = strings.ToLower(filepath.Ext(filename))
	if mime, ok := mimeByExt[ext]; ok {
		return ext, mime
	}
	return defaultExt, defaultMime
}

// Adapter implements port.TextExtractor over a port.OCRClient.
type Adapter struct {
	client port.OCRClient
}

// NewAdapter creates an Adapter. A nil client means no OCR credential is
// configured; every extraction then fails with domain.ErrOCRUnavailable.
func NewAdapter(client port.OCRClient) *Adapter {
	return &Adapter{client: client}
}

// Available reports whether the adapter can reach a provider.
func (a *Adapter) Available() bool {
	return a.client != nil
}

// ExtractText submits the image once and returns the text of the first parsed
// result. An empty string is a valid result.
func (a *Adapter) ExtractText(ctx context.Context, img domain.ImageUpload) (string, error) {
	if a.client == nil {
		return "", domain.ErrOCRUnavailable
	}

	ext, mime := ResolveImageType(img.FileName)
	res, err := a.client.Submit(ctx, port.OCRRequest{
		Image:    img.Data,
		FileName: "image" + ext,
		MimeType: mime,
		Language: LanguageTraditionalChinese,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOCRUnavailable) {
			return "", err
		}
		return "", fmt.Errorf("ocr submit: %w", err)
	}

	if res.IsErroredOnProcessing {
		return "", &domain.OCRProcessingError{Details: errorDetails(res)}
	}
	if len(res.ParsedTexts) == 0 {
		return "", fmt.Errorf("ocr response has no parsed results")
	}
	return res.ParsedTexts[0], nil
}

func errorDetails(res *port.OCRResult) string {
	switch {
	case res.ErrorMessage != "":
		return res.ErrorMessage
	case res.ErrorDetails != "":
		return res.ErrorDetails
	default:
		return "unknown"
	}
}
