package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitsync-pro/backend/internal/mocks"
	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/testhelpers"
)

func TestChatAskWithProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "chat@example.com")
	profile := testhelpers.SampleProfile()
	testhelpers.CreateTestProfile(t, db, user.ID, profile, service.TargetsForProfile(&profile))

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "How much water should I drink?") && strings.Contains(prompt, "2007.1")
	}), false).Return("About 3 liters a day.", nil)

	svc := service.NewChatService(db, service.NewLLMService(gen, nil))
	reply, err := svc.Ask(context.Background(), user.ID, "How much water should I drink?")
	require.NoError(t, err)
	gen.AssertExpectations(t)

	assert.Equal(t, models.RoleAssistant, reply.Role)
	assert.Equal(t, "About 3 liters a day.", reply.Content)

	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.RoleUser, history[0].Role)
	assert.Equal(t, "How much water should I drink?", history[0].Content)
	assert.Equal(t, models.RoleAssistant, history[1].Role)
}

func TestChatAskWithoutProfile(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "noprofile-chat@example.com")

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return !strings.Contains(prompt, "Daily Calorie Target")
	}), false).Return("Start with three sessions a week.", nil)

	svc := service.NewChatService(db, service.NewLLMService(gen, nil))
	reply, err := svc.Ask(context.Background(), user.ID, "How often should I train?")
	require.NoError(t, err)
	assert.Equal(t, "Start with three sessions a week.", reply.Content)
}

func TestChatAskFailureStoresNothing(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "fail-chat@example.com")

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, false).Return("", errors.New("deadline exceeded"))

	svc := service.NewChatService(db, service.NewLLMService(gen, nil))
	_, err := svc.Ask(context.Background(), user.ID, "Hello?")
	assert.ErrorIs(t, err, service.ErrGeneration)

	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestChatClear(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	user := testhelpers.CreateTestUser(t, db, "clear@example.com")
	other := testhelpers.CreateTestUser(t, db, "other@example.com")

	gen := new(mocks.MockTextGenerator)
	gen.On("Generate", mock.Anything, mock.Anything, false).Return("ok", nil)
	svc := service.NewChatService(db, service.NewLLMService(gen, nil))

	_, err := svc.Ask(context.Background(), user.ID, "one")
	require.NoError(t, err)
	_, err = svc.Ask(context.Background(), other.ID, "two")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(context.Background(), user.ID))

	history, err := svc.History(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Empty(t, history)

	history, err = svc.History(context.Background(), other.ID)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
