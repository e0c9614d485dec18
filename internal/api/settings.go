package api

import (
	"net/http"
	"strings"

	"whatsapp-dashboard/internal/database"
	"whatsapp-dashboard/internal/models"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	Settings *database.SettingsStore
}

func NewSettingsHandler(settings *database.SettingsStore) *SettingsHandler {
	return &SettingsHandler{Settings: settings}
}

// GetSettings returns the persisted operator settings with the token
// masked.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"backend_url": h.Settings.Get(models.SettingBackendURL),
		"api_token":   maskToken(h.Settings.Get(models.SettingAPIToken)),
	})
}

type updateSettingsRequest struct {
	APIToken   *string `json:"api_token"`
	BackendURL *string `json:"backend_url"`
}

// UpdateSettings persists new values. A backend URL change takes effect
// on the next restart.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.APIToken != nil {
		if err := h.Settings.Set(models.SettingAPIToken, strings.TrimSpace(*req.APIToken)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save API token"})
			return
		}
	}
	if req.BackendURL != nil {
		if err := h.Settings.Set(models.SettingBackendURL, strings.TrimSpace(*req.BackendURL)); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save backend URL"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "Settings updated"})
}

func maskToken(token string) string {
	if len(token) <= 8 {
		if token == "" {
			return ""
		}
		return "****"
	}
	return token[:4] + strings.Repeat("*", 8) + token[len(token)-4:]
}
