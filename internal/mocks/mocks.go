package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*types.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockProfileService is a mock implementation of the ProfileService interface
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.Profile) (*models.FitnessProfile, error) {
	args := m.Called(ctx, userID, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessProfile), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FitnessProfile), args.Error(1)
}

func (m *MockProfileService) History(ctx context.Context, userID uuid.UUID) ([]*models.ProfileChange, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ProfileChange), args.Error(1)
}

// MockPlanService is a mock implementation of the PlanService interface
type MockPlanService struct {
	mock.Mock
}

func (m *MockPlanService) GenerateMealPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*service.PlanResult, error) {
	args := m.Called(ctx, userID, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlanResult), args.Error(1)
}

func (m *MockPlanService) GenerateWorkoutPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*service.PlanResult, error) {
	args := m.Called(ctx, userID, style)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlanResult), args.Error(1)
}

func (m *MockPlanService) ListPlans(ctx context.Context, userID uuid.UUID, kind types.PlanKind) ([]*models.GeneratedPlan, error) {
	args := m.Called(ctx, userID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.GeneratedPlan), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*service.PlanResult, error) {
	args := m.Called(ctx, userID, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlanResult), args.Error(1)
}

// MockChatService is a mock implementation of the ChatService interface
type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) Ask(ctx context.Context, userID uuid.UUID, message string) (*models.ChatMessage, error) {
	args := m.Called(ctx, userID, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatMessage), args.Error(1)
}

func (m *MockChatService) History(ctx context.Context, userID uuid.UUID) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

func (m *MockChatService) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
