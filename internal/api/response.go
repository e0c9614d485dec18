package api

import (
	"errors"
	"net/http"

	"whatsapp-dashboard/internal/backend"
	"whatsapp-dashboard/internal/state"

	"github.com/gin-gonic/gin"
)

// respondError maps a flow error to the JSON error body the UI turns
// into a toast. Validation failures are the caller's fault; backend
// error statuses pass through; anything else (network, timeout) is a
// bad gateway.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, state.ErrEmptyMessage),
		errors.Is(err, state.ErrEmptyBroadcast),
		errors.Is(err, state.ErrBroadcastTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.StatusCode, gin.H{"error": apiErr.Error()})
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
}
