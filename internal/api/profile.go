package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitsync-pro/backend/internal/models"
	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/history", h.GetHistory)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	record, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(record))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}
	profile, err := req.ToProfile()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.profileService.SaveProfile(c.Request.Context(), userID, profile)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileResponse(record))
}

func (h *ProfileHandler) GetHistory(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	changes, err := h.profileService.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"changes": changes})
}

func profileResponse(record *models.FitnessProfile) types.ProfileResponse {
	return types.ProfileResponse{
		Profile: record.Profile(),
		Targets: record.Targets(),
	}
}
