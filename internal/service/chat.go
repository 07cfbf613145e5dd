package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// ChatService answers free-form coaching questions and keeps the conversation
type ChatService struct {
	db  *gorm.DB
	llm *LLMService
}

// Ensure ChatService implements IChatService
var _ IChatService = (*ChatService)(nil)

// NewChatService creates a new ChatService instance
func NewChatService(db *gorm.DB, llm *LLMService) *ChatService {
	return &ChatService{
		db:  db,
		llm: llm,
	}
}

// Ask sends the message to the model, with the saved profile as context when
// there is one, and stores both sides of the exchange.
func (s *ChatService) Ask(ctx context.Context, userID uuid.UUID, message string) (*models.ChatMessage, error) {
	var (
		profile *types.Profile
		targets *types.Targets
	)
	var record models.FitnessProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&record).Error
	switch {
	case err == nil:
		p, t := record.Profile(), record.Targets()
		profile, targets = &p, &t
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	answer, err := s.llm.GenerateText(ctx, "chat", BuildChatPrompt(message, profile, targets))
	if err != nil {
		return nil, err
	}

	question := &models.ChatMessage{
		UserID:  userID,
		Role:    models.RoleUser,
		Kind:    models.KindText,
		Content: message,
	}
	reply := &models.ChatMessage{
		UserID:  userID,
		Role:    models.RoleAssistant,
		Kind:    models.KindText,
		Content: answer,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question).Error; err != nil {
			return err
		}
		// keep the reply strictly after the question in history order
		if !reply.CreatedAt.After(question.CreatedAt) {
			reply.CreatedAt = question.CreatedAt.Add(time.Millisecond)
		}
		return tx.Create(reply).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save chat messages: %w", err)
	}

	return reply, nil
}

// History returns the conversation in the order it happened
func (s *ChatService) History(ctx context.Context, userID uuid.UUID) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return messages, nil
}

// Clear deletes the user's conversation. Stored plans are kept.
func (s *ChatService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error; err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
