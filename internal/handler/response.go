package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"spamlens/internal/domain"
	"spamlens/internal/middleware"
)

// Error codes returned in the "error" field for failures clients branch on.
const (
	CodeOCRKeyMissing    = "OCR_API_KEY_MISSING"
	CodeOCRAPIError      = "OCR_API_ERROR"
	CodeModelUnavailable = "MODEL_UNAVAILABLE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, msg, details string) {
	c.JSON(status, ErrorBody{Error: msg, Details: details})
}

// MapDomainError translates domain errors to HTTP status codes and error bodies.
func MapDomainError(err error) (status int, body ErrorBody) {
	var ocrErr *domain.OCRProcessingError
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrorBody{Error: err.Error()}
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorBody{Error: CodeFileTooLarge}
	case errors.Is(err, domain.ErrOCRUnavailable):
		return http.StatusInternalServerError, ErrorBody{Error: CodeOCRKeyMissing}
	case errors.As(err, &ocrErr):
		return http.StatusInternalServerError, ErrorBody{Error: CodeOCRAPIError, Details: ocrErr.Details}
	case errors.Is(err, domain.ErrOCRProcessing):
		return http.StatusInternalServerError, ErrorBody{Error: CodeOCRAPIError, Details: "unknown"}
	case errors.Is(err, domain.ErrModelUnavailable):
		return http.StatusInternalServerError, ErrorBody{Error: CodeModelUnavailable}
	default:
		return http.StatusInternalServerError, ErrorBody{Error: err.Error()}
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, body := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get(middleware.ContextKeyRequestID)
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	c.JSON(status, body)
}
