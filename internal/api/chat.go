package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/fitsync-pro/backend/internal/service"
	"github.com/pageza/fitsync-pro/backend/internal/types"
)

type ChatHandler struct {
	chatService service.IChatService
}

func NewChatHandler(chatService service.IChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// RegisterRoutes registers the chat routes; limit runs before Ask only
func (h *ChatHandler) RegisterRoutes(router *gin.RouterGroup, limit ...gin.HandlerFunc) {
	chat := router.Group("/chat")
	{
		chat.GET("", h.History)
		chat.POST("", withLimit(limit, h.Ask)...)
		chat.DELETE("", h.Clear)
	}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reply, err := h.chatService.Ask(c.Request.Context(), userID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}

func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	messages, err := h.chatService.History(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *ChatHandler) Clear(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.chatService.Clear(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
