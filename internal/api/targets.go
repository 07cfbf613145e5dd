package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

// TargetsHandler serves the stateless BMR/TDEE calculator
type TargetsHandler struct{}

func NewTargetsHandler() *TargetsHandler {
	return &TargetsHandler{}
}

func (h *TargetsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/targets", h.Calculate)
}

func (h *TargetsHandler) Calculate(c *gin.Context) {
	var req types.TargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	gender, err := types.ParseGender(req.Gender)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := types.ParseGoal(req.Goal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.CalculateTargets(gender, req.Age, req.HeightCm, req.WeightKg, goal))
}
