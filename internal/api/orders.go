package api

import (
	"net/http"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	State  *state.Container
	Client *backend.Client
}

func NewOrderHandler(container *state.Container, client *backend.Client) *OrderHandler {
	return &OrderHandler{State: container, Client: client}
}

func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.State.LoadOrders(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrder forwards whatever status the operator picked; the backend
// decides whether the transition is valid.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var update models.OrderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.State.UpdateOrder(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) ExportOrders(c *gin.Context) {
	blob, err := h.Client.ExportOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=orders.csv")
	c.Data(http.StatusOK, "text/csv", blob)
}
