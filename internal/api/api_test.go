package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/fitsync-pro/backend/internal/mocks"
	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

const testToken = "valid-token"

type testAPI struct {
	router   *gin.Engine
	userID   uuid.UUID
	auth     *mocks.MockAuthService
	profiles *mocks.MockProfileService
	plans    *mocks.MockPlanService
	chat     *mocks.MockChatService
	gen      *mocks.MockTextGenerator
}

func setupAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)

	a := &testAPI{
		router:   gin.New(),
		userID:   uuid.New(),
		auth:     new(mocks.MockAuthService),
		profiles: new(mocks.MockProfileService),
		plans:    new(mocks.MockPlanService),
		chat:     new(mocks.MockChatService),
		gen:      new(mocks.MockTextGenerator),
	}
	a.auth.On("ValidateToken", testToken).Return(&types.TokenClaims{UserID: a.userID, Email: "u@example.com"}, nil).Maybe()
	a.auth.On("ValidateToken", mock.Anything).Return(nil, service.ErrInvalidToken).Maybe()

	RegisterRoutes(a.router, Services{
		Auth:     a.auth,
		Profiles: a.profiles,
		Plans:    a.plans,
		Chat:     a.chat,
		Models:   service.NewLLMService(a.gen, nil),
	})
	return a
}

func (a *testAPI) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthCheck(t *testing.T) {
	a := setupAPI(t)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	a := setupAPI(t)
	a.auth.On("Register", mock.Anything, mock.MatchedBy(func(r *types.RegisterRequest) bool {
		return r.Email == "new@example.com"
	})).Return("jwt-token", nil)
	a.auth.On("Login", mock.Anything, "new@example.com", "password123").Return("jwt-token", nil)
	a.auth.On("Login", mock.Anything, "new@example.com", "wrong").Return("", service.ErrInvalidCredentials)

	w := a.do(http.MethodPost, "/api/v1/auth/register", gin.H{"name": "New", "email": "new@example.com", "password": "password123"})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "jwt-token", decode(t, w)["token"])

	w = a.do(http.MethodPost, "/api/v1/auth/register", gin.H{"name": "New", "email": "not-an-email", "password": "password123"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodPost, "/api/v1/auth/login", gin.H{"email": "new@example.com", "password": "password123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodPost, "/api/v1/auth/login", gin.H{"email": "new@example.com", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	a := setupAPI(t)
	a.auth.On("Register", mock.Anything, mock.Anything).Return("", service.ErrUserExists)

	w := a.do(http.MethodPost, "/api/v1/auth/register", gin.H{"name": "A", "email": "a@example.com", "password": "password123"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCalculateTargets(t *testing.T) {
	a := setupAPI(t)

	w := a.do(http.MethodPost, "/api/v1/targets", gin.H{
		"gender": "Male", "age": 30, "height_cm": 170, "weight_kg": 70, "goal": "Lose Weight",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var targets types.Targets
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &targets))
	assert.InDelta(t, 1617.5, targets.BMR, 1e-9)
	assert.InDelta(t, 2007.1, targets.DailyCalories, 1e-9)
	assert.InDelta(t, 154.0, targets.DailyProteinG, 1e-9)
}

func TestCalculateTargetsValidation(t *testing.T) {
	a := setupAPI(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{"age too low", gin.H{"gender": "male", "age": 14, "height_cm": 170, "weight_kg": 70, "goal": "lose"}},
		{"height too high", gin.H{"gender": "male", "age": 30, "height_cm": 251, "weight_kg": 70, "goal": "lose"}},
		{"unknown gender", gin.H{"gender": "other", "age": 30, "height_cm": 170, "weight_kg": 70, "goal": "lose"}},
		{"unknown goal", gin.H{"gender": "female", "age": 30, "height_cm": 170, "weight_kg": 70, "goal": "bulk"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := a.do(http.MethodPost, "/api/v1/targets", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	a := setupAPI(t)

	for _, path := range []string{"/api/v1/profile", "/api/v1/plans", "/api/v1/chat", "/api/v1/models"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer expired")
		w := httptest.NewRecorder()
		a.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestProfileRoutes(t *testing.T) {
	a := setupAPI(t)
	record := &models.FitnessProfile{
		UserID: a.userID, Gender: types.Female, Age: 28, HeightCm: 165, WeightKg: 60,
		Goal: types.GoalMaintain, FitnessLevel: types.Beginner,
		BMR: 1330.3, TDEE: 2061.9, DailyCalories: 2061.9, DailyProteinG: 108,
	}
	a.profiles.On("SaveProfile", mock.Anything, a.userID, mock.MatchedBy(func(p *types.Profile) bool {
		return p.Gender == types.Female && p.Goal == types.GoalMaintain && p.FitnessLevel == types.Beginner
	})).Return(record, nil)
	a.profiles.On("GetProfile", mock.Anything, a.userID).Return(record, nil)

	w := a.do(http.MethodPut, "/api/v1/profile", gin.H{
		"gender": "Female", "age": 28, "height_cm": 165, "weight_kg": 60,
		"goal": "maintain", "fitness_level": "Beginner",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2061.9, resp.Targets.DailyCalories)

	w = a.do(http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodPut, "/api/v1/profile", gin.H{
		"gender": "Female", "age": 28, "height_cm": 165, "weight_kg": 250, "goal": "maintain",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfileNotFound(t *testing.T) {
	a := setupAPI(t)
	a.profiles.On("GetProfile", mock.Anything, a.userID).Return(nil, service.ErrProfileNotFound)

	w := a.do(http.MethodGet, "/api/v1/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProfileHistory(t *testing.T) {
	a := setupAPI(t)
	a.profiles.On("History", mock.Anything, a.userID).Return([]*models.ProfileChange{
		{UserID: a.userID, Field: "weight_kg", OldValue: "70", NewValue: "68.5"},
	}, nil)

	w := a.do(http.MethodGet, "/api/v1/profile/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	changes := decode(t, w)["changes"].([]interface{})
	require.Len(t, changes, 1)
	assert.Equal(t, "weight_kg", changes[0].(map[string]interface{})["field"])
	assert.Equal(t, "68.5", changes[0].(map[string]interface{})["new_value"])
}

func TestGenerateMealPlan(t *testing.T) {
	a := setupAPI(t)
	result := &service.PlanResult{
		Plan: &models.GeneratedPlan{ID: uuid.New(), UserID: a.userID, Kind: types.MealPlanKind, Style: types.BasicStyle},
		Data: map[string]interface{}{"meals": []interface{}{}},
	}
	a.plans.On("GenerateMealPlan", mock.Anything, a.userID, types.BasicStyle).Return(result, nil)

	w := a.do(http.MethodPost, "/api/v1/plans/meal", gin.H{"style": "basic"})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decode(t, w)
	assert.Contains(t, body["data"], "meals")
	a.plans.AssertExpectations(t)
}

func TestGenerateWorkoutPlanDefaultsToDetailed(t *testing.T) {
	a := setupAPI(t)
	result := &service.PlanResult{
		Plan: &models.GeneratedPlan{ID: uuid.New(), Kind: types.WorkoutPlanKind, Style: types.DetailedStyle},
		Data: map[string]interface{}{"weekly_plan": []interface{}{}},
	}
	a.plans.On("GenerateWorkoutPlan", mock.Anything, a.userID, types.DetailedStyle).Return(result, nil)

	w := a.do(http.MethodPost, "/api/v1/plans/workout", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	a.plans.AssertExpectations(t)
}

func TestGeneratePlanErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		check  func(t *testing.T, body map[string]interface{})
	}{
		{
			name:   "no profile",
			err:    service.ErrProfileRequired,
			status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "please save your profile first", body["error"])
			},
		},
		{
			name:   "malformed JSON",
			err:    &service.ParseError{Raw: "Sure! {meals", Err: errors.New("invalid character 'S'")},
			status: http.StatusBadGateway,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "Sure! {meals", body["raw_response"])
				assert.Contains(t, body["error"], "JSON Error")
			},
		},
		{
			name:   "transport error",
			err:    errors.Join(service.ErrGeneration, errors.New("API key not valid")),
			status: http.StatusBadGateway,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Contains(t, body["error"], "API key not valid")
			},
		},
		{
			name:   "missing section",
			err:    service.ErrMissingSection,
			status: http.StatusBadGateway,
		},
		{
			name:   "unexpected",
			err:    errors.New("disk full"),
			status: http.StatusInternalServerError,
			check: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal server error", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := setupAPI(t)
			a.plans.On("GenerateMealPlan", mock.Anything, a.userID, types.DetailedStyle).Return(nil, tt.err)

			w := a.do(http.MethodPost, "/api/v1/plans/meal", gin.H{"style": "detailed"})
			assert.Equal(t, tt.status, w.Code)
			if tt.check != nil {
				tt.check(t, decode(t, w))
			}
		})
	}
}

func TestGeneratePlanInvalidStyle(t *testing.T) {
	a := setupAPI(t)

	w := a.do(http.MethodPost, "/api/v1/plans/meal", gin.H{"style": "extreme"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	a.plans.AssertNotCalled(t, "GenerateMealPlan", mock.Anything, mock.Anything, mock.Anything)
}

func TestListAndGetPlans(t *testing.T) {
	a := setupAPI(t)
	planID := uuid.New()
	a.plans.On("ListPlans", mock.Anything, a.userID, types.WorkoutPlanKind).
		Return([]*models.GeneratedPlan{{ID: planID, Kind: types.WorkoutPlanKind}}, nil)
	a.plans.On("GetPlan", mock.Anything, a.userID, planID).
		Return(&service.PlanResult{Plan: &models.GeneratedPlan{ID: planID}}, nil)
	a.plans.On("GetPlan", mock.Anything, a.userID, mock.Anything).Return(nil, service.ErrPlanNotFound)

	w := a.do(http.MethodGet, "/api/v1/plans?kind=workout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["plans"], 1)

	w = a.do(http.MethodGet, "/api/v1/plans?kind=snack", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/v1/plans/"+planID.String(), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.do(http.MethodGet, "/api/v1/plans/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = a.do(http.MethodGet, "/api/v1/plans/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatRoutes(t *testing.T) {
	a := setupAPI(t)
	reply := &models.ChatMessage{ID: uuid.New(), UserID: a.userID, Role: models.RoleAssistant, Kind: models.KindText, Content: "Drink water."}
	a.chat.On("Ask", mock.Anything, a.userID, "How much water?").Return(reply, nil)
	a.chat.On("History", mock.Anything, a.userID).Return([]*models.ChatMessage{reply}, nil)
	a.chat.On("Clear", mock.Anything, a.userID).Return(nil)

	w := a.do(http.MethodPost, "/api/v1/chat", gin.H{"message": "How much water?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Drink water.", decode(t, w)["content"])

	w = a.do(http.MethodPost, "/api/v1/chat", gin.H{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = a.do(http.MethodGet, "/api/v1/chat", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["messages"], 1)

	w = a.do(http.MethodDelete, "/api/v1/chat", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	a.chat.AssertExpectations(t)
}

func TestListModels(t *testing.T) {
	a := setupAPI(t)
	a.gen.On("ListModels", mock.Anything).Return([]service.ModelInfo{
		{Name: "models/gemini-2.5-flash", DisplayName: "Gemini 2.5 Flash", SupportedActions: []string{"generateContent"}},
	}, nil)

	w := a.do(http.MethodGet, "/api/v1/models", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "gemini-test", body["current"])
	assert.Len(t, body["models"], 1)
}

func TestListModelsFailure(t *testing.T) {
	a := setupAPI(t)
	a.gen.On("ListModels", mock.Anything).Return(nil, errors.New("permission denied"))

	w := a.do(http.MethodGet, "/api/v1/models", nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
