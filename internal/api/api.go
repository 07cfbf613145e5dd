package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/internal/database"
	"github.com/pageza/fitsync-pro/backend/internal/middleware"
	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// ModelCatalog lists the models available to the configured API key
type ModelCatalog interface {
	ListModels(ctx context.Context) ([]service.ModelInfo, error)
	ModelName() string
}

// Services bundles everything the HTTP layer depends on
type Services struct {
	DB       *gorm.DB
	Auth     service.IAuthService
	Profiles service.IProfileService
	Plans    service.IPlanService
	Chat     service.IChatService
	Models   ModelCatalog
	// RateLimiter guards the model-backed routes; nil disables rate limiting
	RateLimiter *middleware.RateLimiter
}

// RegisterRoutes registers all API routes
func RegisterRoutes(router *gin.Engine, svc Services) {
	// Health check endpoint (no auth required)
	router.GET("/health", HealthCheck(svc.DB))

	v1 := router.Group("/api/v1")

	NewAuthHandler(svc.Auth).RegisterRoutes(v1)
	NewTargetsHandler().RegisterRoutes(v1)

	authed := v1.Group("")
	authed.Use(middleware.AuthMiddleware(svc.Auth))

	// model-backed routes share the generation rate limit
	limited := []gin.HandlerFunc{}
	if svc.RateLimiter != nil {
		limited = append(limited, svc.RateLimiter.RateLimitMiddleware())
	}

	NewProfileHandler(svc.Profiles).RegisterRoutes(authed)
	NewPlanHandler(svc.Plans).RegisterRoutes(authed, limited...)
	NewChatHandler(svc.Chat).RegisterRoutes(authed, limited...)
	NewModelsHandler(svc.Models).RegisterRoutes(authed)
}

// HealthCheck returns the health status of the API
func HealthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := gin.H{
			"status":  "healthy",
			"message": "FitSync Pro API is running",
			"version": "v1.0.0",
		}
		if db != nil {
			if err := database.HealthCheck(c.Request.Context(), db); err != nil {
				status["status"] = "unhealthy"
				status["database"] = err.Error()
				c.JSON(http.StatusServiceUnavailable, status)
				return
			}
			status["database"] = "ok"
		}
		c.JSON(http.StatusOK, status)
	}
}
