package api

import (
	"net/http"

	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type QuickReplyHandler struct {
	State *state.Container
}

func NewQuickReplyHandler(container *state.Container) *QuickReplyHandler {
	return &QuickReplyHandler{State: container}
}

func (h *QuickReplyHandler) GetQuickReplies(c *gin.Context) {
	replies, err := h.State.LoadQuickReplies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if replies == nil {
		replies = []models.QuickReply{}
	}
	c.JSON(http.StatusOK, replies)
}

func (h *QuickReplyHandler) CreateQuickReply(c *gin.Context) {
	var req models.CreateQuickReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := h.State.CreateQuickReply(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reply)
}

func (h *QuickReplyHandler) DeleteQuickReply(c *gin.Context) {
	if err := h.State.DeleteQuickReply(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "Quick reply deleted"})
}
