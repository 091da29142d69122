package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spamlens/internal/domain"
	"spamlens/internal/ocr"
	"spamlens/internal/service"
	"spamlens/mocks"
)

func testVector() domain.FeatureVector {
	return domain.FeatureVector{Dim: 4, Indices: []int{1, 3}, Values: []float64{0.6, 0.8}}
}

func setupClassificationService() (service.ClassificationService, *mocks.MockSpamModel, *mocks.MockTextExtractor) {
	model := new(mocks.MockSpamModel)
	extractor := new(mocks.MockTextExtractor)
	svc := service.NewClassificationService(model, extractor)
	return svc, model, extractor
}

// --- ClassifyText ---

func TestClassificationService_ClassifyText_Spam(t *testing.T) {
	svc, model, _ := setupClassificationService()
	vec := testVector()

	model.On("Transform", "WIN FREE MONEY NOW").Return(vec).Once()
	model.On("Predict", vec).Return(1).Once()

	result, err := svc.ClassifyText(context.Background(), "  WIN FREE MONEY NOW \n")

	require.NoError(t, err)
	assert.Equal(t, domain.LabelSpam, result.Label)
	model.AssertExpectations(t)
	model.AssertNotCalled(t, "PredictProbability", mock.Anything)
}

func TestClassificationService_ClassifyText_Ham(t *testing.T) {
	svc, model, _ := setupClassificationService()
	vec := testVector()

	model.On("Transform", "hi mom").Return(vec).Once()
	model.On("Predict", vec).Return(0).Once()

	result, err := svc.ClassifyText(context.Background(), "hi mom")

	require.NoError(t, err)
	assert.Equal(t, domain.LabelHam, result.Label)
}

func TestClassificationService_ClassifyText_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t "} {
		svc, model, _ := setupClassificationService()

		result, err := svc.ClassifyText(context.Background(), text)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.ErrorIs(t, err, domain.ErrEmptyText)
		model.AssertNotCalled(t, "Transform", mock.Anything)
	}
}

func TestClassificationService_ClassifyText_ModelUnavailable(t *testing.T) {
	svc := service.NewClassificationService(nil, new(mocks.MockTextExtractor))

	result, err := svc.ClassifyText(context.Background(), "hello")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

// --- ClassifyAll ---

func TestClassificationService_ClassifyAll_TextOnly(t *testing.T) {
	svc, model, extractor := setupClassificationService()
	vec := testVector()

	model.On("Transform", "hi mom").Return(vec).Once()
	model.On("Predict", vec).Return(0).Once()
	model.On("PredictProbability", vec).Return(0.031642).Once()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Text: " hi mom "})

	require.NoError(t, err)
	assert.Equal(t, &domain.Decision{Label: domain.LabelHam, Text: "hi mom", Score: 0.0316}, result)
	model.AssertExpectations(t)
	extractor.AssertNotCalled(t, "ExtractText", mock.Anything, mock.Anything)
}

func TestClassificationService_ClassifyAll_ImageAndText(t *testing.T) {
	svc, model, extractor := setupClassificationService()
	vec := testVector()
	img := &domain.ImageUpload{FileName: "ad.png", Data: []byte("png")}

	extractor.On("ExtractText", mock.Anything, *img).Return("恭喜中獎\r\n", nil).Once()
	model.On("Transform", "恭喜中獎 請回電").Return(vec).Once()
	model.On("Predict", vec).Return(1).Once()
	model.On("PredictProbability", vec).Return(0.98765).Once()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Text: "請回電", Image: img})

	require.NoError(t, err)
	assert.Equal(t, domain.LabelSpam, result.Label)
	assert.Equal(t, "恭喜中獎 請回電", result.Text)
	assert.Equal(t, 0.9877, result.Score)
	model.AssertNumberOfCalls(t, "Transform", 1)
	model.AssertNumberOfCalls(t, "Predict", 1)
	model.AssertNumberOfCalls(t, "PredictProbability", 1)
	extractor.AssertExpectations(t)
}

func TestClassificationService_ClassifyAll_ImageOnly(t *testing.T) {
	svc, model, extractor := setupClassificationService()
	vec := testVector()
	img := &domain.ImageUpload{FileName: "a.jpg", Data: []byte("jpg")}

	extractor.On("ExtractText", mock.Anything, *img).Return("  Claim your prize  ", nil).Once()
	model.On("Transform", "Claim your prize").Return(vec).Once()
	model.On("Predict", vec).Return(1).Once()
	model.On("PredictProbability", vec).Return(0.5).Once()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Image: img})

	require.NoError(t, err)
	assert.Equal(t, "Claim your prize", result.Text)
	assert.Equal(t, 0.5, result.Score)
}

func TestClassificationService_ClassifyAll_NothingSupplied(t *testing.T) {
	svc, model, extractor := setupClassificationService()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Text: "   "})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, err, domain.ErrNoUsableText)
	model.AssertNotCalled(t, "Transform", mock.Anything)
	extractor.AssertNotCalled(t, "ExtractText", mock.Anything, mock.Anything)
}

func TestClassificationService_ClassifyAll_ImageWithoutText(t *testing.T) {
	svc, model, extractor := setupClassificationService()
	img := &domain.ImageUpload{FileName: "blank.png"}

	extractor.On("ExtractText", mock.Anything, *img).Return("\r\n", nil).Once()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Image: img})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrNoUsableText)
	model.AssertNotCalled(t, "Transform", mock.Anything)
}

func TestClassificationService_ClassifyAll_OCRUnavailableRegardlessOfText(t *testing.T) {
	model := new(mocks.MockSpamModel)
	svc := service.NewClassificationService(model, ocr.NewAdapter(nil))

	for _, text := range []string{"", "plenty of text here"} {
		result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{
			Text:  text,
			Image: &domain.ImageUpload{FileName: "a.png", Data: []byte("x")},
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
	}
	model.AssertNotCalled(t, "Transform", mock.Anything)
}

func TestClassificationService_ClassifyAll_OCRProcessingError(t *testing.T) {
	svc, model, extractor := setupClassificationService()
	img := &domain.ImageUpload{FileName: "a.gif"}
	procErr := &domain.OCRProcessingError{Details: "E101: timed out"}

	extractor.On("ExtractText", mock.Anything, *img).Return("", procErr).Once()

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Text: "hello", Image: img})

	assert.Nil(t, result)
	var got *domain.OCRProcessingError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "E101: timed out", got.Details)
	model.AssertNotCalled(t, "Transform", mock.Anything)
}

func TestClassificationService_ClassifyAll_ModelUnavailable(t *testing.T) {
	svc := service.NewClassificationService(nil, new(mocks.MockTextExtractor))

	result, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{Text: "hello"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}

func TestClassificationService_ClassifyAll_EmptyTextCheckedBeforeModel(t *testing.T) {
	svc := service.NewClassificationService(nil, new(mocks.MockTextExtractor))

	_, err := svc.ClassifyAll(context.Background(), service.ClassifyAllInput{})

	assert.ErrorIs(t, err, domain.ErrNoUsableText)
}
