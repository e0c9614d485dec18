package api

import (
	"net/http"

	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	State *state.Container
}

func NewMessageHandler(container *state.Container) *MessageHandler {
	return &MessageHandler{State: container}
}

// GetMessages reloads a chat's history from the backend.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	messages, err := h.State.LoadMessages(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.State.SendText(c.Request.Context(), req.To, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *MessageHandler) SendTemplate(c *gin.Context) {
	var req models.SendTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.State.SendTemplate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
