package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillnet_backend/internal/config"
	"skillnet_backend/internal/middleware"
	"skillnet_backend/internal/services"
	"skillnet_backend/internal/services/dto"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
	jwtCfg         *config.JWTConfig
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService, jwtCfg *config.JWTConfig) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
		jwtCfg:         jwtCfg,
	}
}

// RegisterRoutes registers the messaging routes. All of them require
// auth.
func (h *MessageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	conversations := rg.Group("/conversations")
	conversations.Use(middleware.AuthMiddleware(h.jwtCfg))
	{
		conversations.GET("", h.ListConversations)
		conversations.POST("", h.StartConversation)
		conversations.GET("/:id/messages", h.ListMessages)
		conversations.POST("/:id/messages", h.SendMessage)
	}
}

// ListConversations godoc
// @Summary List the authenticated user's conversations
// @Description Most recently active first, each with its last message
// @Tags messages
// @Produce json
// @Success 200 {array} dto.ConversationResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /conversations [get]
func (h *MessageHandler) ListConversations(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	db := h.GetDB(c)

	conversations, err := h.messageService.ListConversations(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, conversations)
}

// StartConversation godoc
// @Summary Start (or reuse) a direct conversation
// @Tags messages
// @Accept json
// @Produce json
// @Param request body dto.CreateConversationRequest true "Recipient"
// @Success 201 {object} dto.ConversationResponse
// @Failure 400 {object} apperrors.ErrorResponse "Conversation with yourself"
// @Failure 404 {object} apperrors.ErrorResponse "Recipient not found"
// @Router /conversations [post]
func (h *MessageHandler) StartConversation(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateConversationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	conversation, err := h.messageService.StartConversation(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conversation)
}

// ListMessages godoc
// @Summary List a conversation's messages, oldest first
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Param skip query int false "Offset"
// @Param take query int false "Page size (default 50)"
// @Success 200 {array} dto.MessageDTO
// @Failure 403 {object} apperrors.ErrorResponse "Not a participant"
// @Failure 404 {object} apperrors.ErrorResponse "Conversation not found"
// @Router /conversations/{id}/messages [get]
func (h *MessageHandler) ListMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.MessageListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	db := h.GetDB(c)

	messages, err := h.messageService.ListMessages(db, userID, c.Param("id"), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// SendMessage godoc
// @Summary Send a message to a conversation
// @Tags messages
// @Accept json
// @Produce json
// @Param id path string true "Conversation ID"
// @Param request body dto.SendMessageRequest true "Message content"
// @Success 201 {object} dto.MessageDTO
// @Failure 403 {object} apperrors.ErrorResponse "Not a participant"
// @Failure 404 {object} apperrors.ErrorResponse "Conversation not found"
// @Router /conversations/{id}/messages [post]
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	message, err := h.messageService.SendMessage(db, userID, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}
