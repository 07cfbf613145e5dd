package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// ModelsHandler exposes the model catalog of the configured API key
type ModelsHandler struct {
	catalog ModelCatalog
}

func NewModelsHandler(catalog ModelCatalog) *ModelsHandler {
	return &ModelsHandler{
		catalog: catalog,
	}
}

func (h *ModelsHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/models", h.ListModels)
}

func (h *ModelsHandler) ListModels(c *gin.Context) {
	models, err := h.catalog.ListModels(c.Request.Context())
	if err != nil {
		respondError(c, fmt.Errorf("failed to list models: %w", err))
		return
	}
	if models == nil {
		models = []service.ModelInfo{}
	}

	c.JSON(http.StatusOK, gin.H{
		"current": h.catalog.ModelName(),
		"models":  models,
	})
}
