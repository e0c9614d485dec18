package api

import (
	"net/http"

	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	State *state.Container
}

func NewChatHandler(container *state.Container) *ChatHandler {
	return &ChatHandler{State: container}
}

// GetChats reloads the chat list from the backend and returns it.
func (h *ChatHandler) GetChats(c *gin.Context) {
	chats, err := h.State.LoadChats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if chats == nil {
		chats = []models.Chat{}
	}
	c.JSON(http.StatusOK, chats)
}

func (h *ChatHandler) GetChat(c *gin.Context) {
	chat, err := h.State.GetChat(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (h *ChatHandler) UpdateChat(c *gin.Context) {
	var update models.ChatUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.State.UpdateChat(c.Request.Context(), c.Param("phone"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

type labelRequest struct {
	Label string `json:"label" binding:"required"`
}

func (h *ChatHandler) AddLabel(c *gin.Context) {
	var req labelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, err := h.State.AddChatLabel(c.Request.Context(), c.Param("phone"), req.Label)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

func (h *ChatHandler) RemoveLabel(c *gin.Context) {
	chat, err := h.State.RemoveChatLabel(c.Request.Context(), c.Param("phone"), c.Param("label"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}
