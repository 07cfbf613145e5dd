package api

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

type PlanHandler struct {
	planService service.IPlanService
}

func NewPlanHandler(planService service.IPlanService) *PlanHandler {
	return &PlanHandler{
		planService: planService,
	}
}

// RegisterRoutes registers the plan routes; limit runs before the generation handlers only
func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup, limit ...gin.HandlerFunc) {
	plans := router.Group("/plans")
	{
		plans.GET("", h.ListPlans)
		plans.GET("/:id", h.GetPlan)
		plans.POST("/meal", withLimit(limit, h.GenerateMealPlan)...)
		plans.POST("/workout", withLimit(limit, h.GenerateWorkoutPlan)...)
	}
}

func (h *PlanHandler) GenerateMealPlan(c *gin.Context) {
	h.generate(c, h.planService.GenerateMealPlan)
}

func (h *PlanHandler) GenerateWorkoutPlan(c *gin.Context) {
	h.generate(c, h.planService.GenerateWorkoutPlan)
}

type generateFunc func(ctx context.Context, userID uuid.UUID, style types.PlanStyle) (*service.PlanResult, error)

func (h *PlanHandler) generate(c *gin.Context, fn generateFunc) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	// the body is optional; an empty one selects the detailed style
	var req types.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	style, err := types.ParsePlanStyle(req.Style)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := fn(c.Request.Context(), userID, style)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *PlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var kind types.PlanKind
	switch k := types.PlanKind(c.Query("kind")); k {
	case "", types.MealPlanKind, types.WorkoutPlanKind:
		kind = k
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be meal or workout"})
		return
	}

	plans, err := h.planService.ListPlans(c.Request.Context(), userID, kind)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan ID"})
		return
	}

	result, err := h.planService.GetPlan(c.Request.Context(), userID, planID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func withLimit(limit []gin.HandlerFunc, handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(limit)+1)
	chain = append(chain, limit...)
	return append(chain, handler)
}
