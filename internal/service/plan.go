package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/metrics"
	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

var (
	// ErrProfileRequired is returned when a plan is requested before the profile was saved
	ErrProfileRequired = errors.New("please save your profile first")
	// ErrMissingSection is returned when the decoded plan lacks its top-level section
	ErrMissingSection = errors.New("plan response is missing its top-level section")
	// ErrPlanNotFound is returned when a plan does not exist or belongs to another user
	ErrPlanNotFound = errors.New("plan not found")
)

// PlanResult is a stored plan together with its decoded content and chart data
type PlanResult struct {
	Plan    *models.GeneratedPlan  `json:"plan"`
	Data    map[string]interface{} `json:"data"`
	Summary *types.PlanSummary     `json:"summary,omitempty"`
}

// PlanService generates meal and workout plans from a user's saved profile
type PlanService struct {
	db       *gorm.DB
	llm      *LLMService
	archiver PlanArchiver
	metrics  *metrics.Recorder
}

// Ensure PlanService implements IPlanService
var _ IPlanService = (*PlanService)(nil)

// NewPlanService creates a new PlanService instance. archiver may be nil.
func NewPlanService(db *gorm.DB, llm *LLMService, archiver PlanArchiver, recorder *metrics.Recorder) *PlanService {
	return &PlanService{
		db:       db,
		llm:      llm,
		archiver: archiver,
		metrics:  recorder,
	}
}

// GenerateMealPlan asks the model for one day of meals sized to the stored targets
func (s *PlanService) GenerateMealPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*PlanResult, error) {
	record, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := record.Profile()
	targets := record.Targets()
	prompt := BuildMealPlanPrompt(style, &profile, targets)

	return s.generate(ctx, userID, types.MealPlanKind, style, prompt)
}

// GenerateWorkoutPlan asks the model for a 7-day training split
func (s *PlanService) GenerateWorkoutPlan(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*PlanResult, error) {
	record, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := record.Profile()
	prompt := BuildWorkoutPlanPrompt(style, &profile)

	return s.generate(ctx, userID, types.WorkoutPlanKind, style, prompt)
}

func (s *PlanService) loadProfile(ctx context.Context, userID uuid.UUID) (*models.FitnessProfile, error) {
	var record models.FitnessProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileRequired
		}
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &record, nil
}

func (s *PlanService) generate(ctx context.Context, userID uuid.UUID, kind types.PlanKind, style types.PlanStyle, prompt string) (*PlanResult, error) {
	operation := string(kind) + "_plan"

	result, err := s.llm.GenerateJSON(ctx, operation, prompt)
	if err != nil {
		return nil, err
	}

	key := types.SectionKey(kind, style)
	if _, ok := result.Data[key]; !ok {
		s.metrics.IncMissingSection(operation)
		log.Printf("[PlanService] %s response has no %q key", operation, key)
		return nil, fmt.Errorf("%w: %q", ErrMissingSection, key)
	}

	plan := &models.GeneratedPlan{
		UserID:  userID,
		Kind:    kind,
		Style:   style,
		Model:   s.llm.ModelName(),
		Prompt:  prompt,
		RawJSON: result.Raw,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}

		msgKind := models.KindMealPlan
		if kind == types.WorkoutPlanKind {
			msgKind = models.KindWorkoutPlan
		}
		msg := &models.ChatMessage{
			UserID: userID,
			Role:   models.RoleAssistant,
			Kind:   msgKind,
			PlanID: &plan.ID,
		}
		return tx.Create(msg).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	if s.archiver != nil {
		archiveKey, err := s.archiver.Archive(ctx, plan)
		if err != nil {
			// the plan is already stored; the archive copy is best effort
			log.Printf("[PlanService] Failed to archive plan %s: %v", plan.ID, err)
		} else {
			plan.ArchiveKey = archiveKey
			if err := s.db.WithContext(ctx).Model(plan).Update("archive_key", archiveKey).Error; err != nil {
				log.Printf("[PlanService] Failed to record archive key for plan %s: %v", plan.ID, err)
			}
		}
	}

	s.metrics.IncPlan(string(kind), string(style))
	log.Printf("[PlanService] Stored %s %s plan %s for user %s", style, kind, plan.ID, userID)

	return &PlanResult{
		Plan:    plan,
		Data:    result.Data,
		Summary: Summarize(kind, style, result.Raw),
	}, nil
}

// ListPlans returns the user's plans, newest first. An empty kind lists both kinds.
func (s *PlanService) ListPlans(ctx context.Context, userID uuid.UUID, kind types.PlanKind) ([]*models.GeneratedPlan, error) {
	query := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}

	var plans []*models.GeneratedPlan
	if err := query.Order("created_at DESC").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return plans, nil
}

// GetPlan loads one stored plan and decodes it again
func (s *PlanService) GetPlan(ctx context.Context, userID, planID uuid.UUID) (*PlanResult, error) {
	var plan models.GeneratedPlan
	err := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", planID, userID).First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	data, err := DecodeJSONObject(plan.RawJSON)
	if err != nil {
		return nil, &ParseError{Raw: Excerpt(plan.RawJSON), Err: err}
	}

	return &PlanResult{
		Plan:    &plan,
		Data:    data,
		Summary: Summarize(plan.Kind, plan.Style, plan.RawJSON),
	}, nil
}
