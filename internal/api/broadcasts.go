package api

import (
	"net/http"

	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type BroadcastHandler struct {
	State *state.Container
}

func NewBroadcastHandler(container *state.Container) *BroadcastHandler {
	return &BroadcastHandler{State: container}
}

func (h *BroadcastHandler) GetBroadcasts(c *gin.Context) {
	broadcasts, err := h.State.LoadBroadcasts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if broadcasts == nil {
		broadcasts = []models.Broadcast{}
	}
	c.JSON(http.StatusOK, broadcasts)
}

func (h *BroadcastHandler) CreateBroadcast(c *gin.Context) {
	var req models.CreateBroadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	broadcast, err := h.State.CreateBroadcast(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, broadcast)
}

// Estimate returns the live recipient count for the posted targeting
// criteria. A failed estimate reads as zero, never as the previous
// value.
func (h *BroadcastHandler) Estimate(c *gin.Context) {
	var target models.BroadcastTarget
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := h.State.EstimateRecipients(c.Request.Context(), target)
	c.JSON(http.StatusOK, models.EstimateResponse{Count: count})
}

func (h *BroadcastHandler) SendBroadcast(c *gin.Context) {
	broadcast, err := h.State.SendBroadcastNow(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, broadcast)
}
