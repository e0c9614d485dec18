package api

import (
	"net/http"
	"strconv"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/poller"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Client *backend.Client
	Sync   *poller.Synchronizer
}

func NewDashboardHandler(client *backend.Client, sync *poller.Synchronizer) *DashboardHandler {
	return &DashboardHandler{Client: client, Sync: sync}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.Client.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	analytics, err := h.Client.GetAnalytics(c.Request.Context(), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *DashboardHandler) GetProducts(c *gin.Context) {
	products, err := h.Client.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// Health reports whether the synchronizer's last poll reached the
// backend.
func (h *DashboardHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"connected": h.Sync.Connected(),
		"polling":   h.Sync.Running(),
	})
}
