package mocks

import (
	"github.com/stretchr/testify/mock"

	"spamlens/internal/domain"
)

// MockSpamModel is a mock implementation of port.SpamModel.
type MockSpamModel struct {
	mock.Mock
}

func (m *MockSpamModel) Transform(text string) domain.FeatureVector {
	args := m.Called(text)
	return args.Get(0).(domain.FeatureVector)
}

func (m *MockSpamModel) Predict(vec domain.FeatureVector) int {
	args := m.Called(vec)
	return args.Int(0)
}

func (m *MockSpamModel) PredictProbability(vec domain.FeatureVector) float64 {
	args := m.Called(vec)
	return args.Get(0).(float64)
}
