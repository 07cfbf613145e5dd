package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// TextGenerator is a hosted text-generation model
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, jsonOutput bool) (string, error)
	ListModels(ctx context.Context) ([]ModelInfo, error)
	ModelName() string
}

// PlanArchiver stores a copy of a generated plan outside the database
type PlanArchiver interface {
	Archive(ctx context.Context, plan *models.GeneratedPlan) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for fitness profile operations
type IProfileService interface {
	SaveProfile(ctx context.Context, userID uuid.UUID, profile *types.Profile) (*models.FitnessProfile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error)
	History(ctx context.Context, userID uuid.UUID) ([]*models.ProfileChange, error)
}

// IPlanService defines the interface for plan generation and retrieval
type IPlanService interface {
	GenerateMealPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*PlanResult, error)
	GenerateWorkoutPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*PlanResult, error)
	ListPlans(ctx context.Context, userID uuid.UUID, kind types.PlanKind) ([]*models.GeneratedPlan, error)
	GetPlan(ctx context.Context, userID, planID uuid.UUID) (*PlanResult, error)
}

// IChatService defines the interface for the coaching conversation
type IChatService interface {
	Ask(ctx context.Context, userID uuid.UUID, message string) (*models.ChatMessage, error)
	History(ctx context.Context, userID uuid.UUID) ([]*models.ChatMessage, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}
