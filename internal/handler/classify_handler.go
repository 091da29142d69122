package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"spamlens/internal/domain"
	"spamlens/internal/service"
)

// ClassifyHandler handles the spam classification endpoints.
type ClassifyHandler struct {
	svc           service.ClassificationService
	maxImageBytes int64
}

// NewClassifyHandler creates a new ClassifyHandler. maxImageBytes <= 0 disables
// the upload size check.
func NewClassifyHandler(svc service.ClassificationService, maxImageBytes int64) *ClassifyHandler {
	return &ClassifyHandler{svc: svc, maxImageBytes: maxImageBytes}
}

// Predict handles POST /predict
// @Summary Classify a text message
// @Description Returns the spam/ham label for a plain text message
// @Tags classify
// @Accept json
// @Produce json
// @Param body body PredictRequest true "Message to classify"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} ErrorBody "Missing or empty text"
// @Failure 500 {object} ErrorBody "Model unavailable or internal error"
// @Router /predict [post]
func (h *ClassifyHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		RespondError(c, http.StatusBadRequest, "invalid request body: "+err.Error(), "")
		return
	}

	decision, err := h.svc.ClassifyText(c.Request.Context(), req.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// AnalyzeAll handles POST /analyze-all
// @Summary Classify an image and/or text message
// @Description OCRs the optional image (Traditional Chinese), merges it with the optional text and classifies the result
// @Tags classify
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Image to OCR (jpg, png, bmp, gif)"
// @Param text formData string false "Additional message text"
// @Success 200 {object} AnalyzeAllResponse
// @Failure 400 {object} ErrorBody "No usable text"
// @Failure 413 {object} ErrorBody "Image too large"
// @Failure 500 {object} ErrorBody "OCR_API_KEY_MISSING, OCR_API_ERROR, MODEL_UNAVAILABLE or internal error"
// @Router /analyze-all [post]
func (h *ClassifyHandler) AnalyzeAll(c *gin.Context) {
	img, err := h.readImage(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	input := service.ClassifyAllInput{
		Text:  c.PostForm("text"),
		Image: img,
	}

	decision, err := h.svc.ClassifyAll(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// readImage returns the uploaded image, or nil when the request carries none.
func (h *ClassifyHandler) readImage(c *gin.Context) (*domain.ImageUpload, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: reading image part: %v", domain.ErrInvalidInput, err)
	}
	defer func() { _ = file.Close() }()

	if header.Filename == "" {
		return nil, nil
	}
	if h.maxImageBytes > 0 && header.Size > h.maxImageBytes {
		log.Printf("classifyHandler.AnalyzeAll: rejecting %q (%d bytes, limit %d)",
			header.Filename, header.Size, h.maxImageBytes)
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return &domain.ImageUpload{FileName: header.Filename, Data: data}, nil
}
