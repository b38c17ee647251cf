package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	chatapp "github.com/electrostore/backend/internal/application/chat"
)

// ChatHandler handles storefront chatbot endpoints
type ChatHandler struct {
	BaseHandler
	chatService *chatapp.ChatService
	logger      *zap.Logger
}

// NewChatHandler creates a new ChatHandler
func NewChatHandler(chatService *chatapp.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// Ask answers a shopper question. Anonymous callers get an answer
// without their conversation being persisted.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatapp.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.chatService.Ask(c.Request.Context(), getOptionalUserID(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// History returns the caller's past conversation turns
func (h *ChatHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	messages, err := h.chatService.GetHistory(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, messages)
}
