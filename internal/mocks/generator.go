package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// MockTextGenerator is a mock implementation of service.TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error) {
	args := m.Called(ctx, prompt, jsonOutput)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) ListModels(ctx context.Context) ([]service.ModelInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.ModelInfo), args.Error(1)
}

func (m *MockTextGenerator) ModelName() string {
	return "gemini-test"
}

// MockPlanArchiver is a mock implementation of service.PlanArchiver
type MockPlanArchiver struct {
	mock.Mock
}

func (m *MockPlanArchiver) Archive(ctx context.Context, plan *models.GeneratedPlan) (string, error) {
	args := m.Called(ctx, plan)
	return args.String(0), args.Error(1)
}
