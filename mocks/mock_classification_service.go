package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"spamlens/internal/domain"
	"spamlens/internal/service"
)

// MockClassificationService is a mock implementation of service.ClassificationService.
type MockClassificationService struct {
	mock.Mock
}

func (m *MockClassificationService) ClassifyText(ctx context.Context, text string) (*domain.TextDecision, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TextDecision), args.Error(1)
}

func (m *MockClassificationService) ClassifyAll(ctx context.Context, input service.ClassifyAllInput) (*domain.Decision, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Decision), args.Error(1)
}
