package api

import (
	"net/http"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/state"
	"whatsapp-dashboard/pkg/models"

	"github.com/gin-gonic/gin"
)

type CustomerHandler struct {
	State  *state.Container
	Client *backend.Client
}

func NewCustomerHandler(container *state.Container, client *backend.Client) *CustomerHandler {
	return &CustomerHandler{State: container, Client: client}
}

func (h *CustomerHandler) GetCustomers(c *gin.Context) {
	customers, err := h.State.LoadCustomers(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	if customers == nil {
		customers = []models.Customer{}
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := h.State.GetCustomer(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer, err := h.State.SaveCustomer(c.Request.Context(), c.Param("phone"), update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) GetLabels(c *gin.Context) {
	labels, err := h.Client.CustomerLabels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if labels == nil {
		labels = []string{}
	}
	c.JSON(http.StatusOK, labels)
}

func (h *CustomerHandler) GetSegments(c *gin.Context) {
	segments, err := h.Client.CustomerSegments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	if segments == nil {
		segments = []models.Segment{}
	}
	c.JSON(http.StatusOK, segments)
}

// ExportCustomers streams the backend's CSV export to the browser as a
// download.
func (h *CustomerHandler) ExportCustomers(c *gin.Context) {
	blob, err := h.Client.ExportCustomers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=customers.csv")
	c.Data(http.StatusOK, "text/csv", blob)
}
