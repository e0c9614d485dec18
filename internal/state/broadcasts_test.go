package state

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"whatsapp-dashboard/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateRecipients_Success(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.EstimateResponse{Count: 42})
	})

	count := container.EstimateRecipients(context.Background(), models.BroadcastTarget{Type: models.TargetAll})
	assert.Equal(t, 42, count)
}

func TestEstimateRecipients_NetworkErrorFallsBackToZero(t *testing.T) {
	container := deadContainer(t)

	// A failed estimate reads as zero, never as a stale prior value.
	count := container.EstimateRecipients(context.Background(), models.BroadcastTarget{Type: models.TargetAll})
	assert.Equal(t, 0, count)
}

func TestEstimateRecipients_ErrorStatusFallsBackToZero(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusServiceUnavailable)
	})

	count := container.EstimateRecipients(context.Background(), models.BroadcastTarget{
		Type:    models.TargetSegment,
		Segment: "vip",
	})
	assert.Equal(t, 0, count)
}

func TestCreateBroadcast_EmptyBodyRejected(t *testing.T) {
	container, counter := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid broadcast")
	})

	_, err := container.CreateBroadcast(context.Background(), models.CreateBroadcastRequest{
		Name: "launch",
		Body: "   ",
	})
	assert.ErrorIs(t, err, ErrEmptyBroadcast)
	assert.Equal(t, 0, counter.total())
}

func TestCreateBroadcast_BodyOverLimitRejected(t *testing.T) {
	container, counter := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid broadcast")
	})

	_, err := container.CreateBroadcast(context.Background(), models.CreateBroadcastRequest{
		Name: "launch",
		Body: strings.Repeat("x", models.MaxBroadcastBody+1),
	})
	assert.ErrorIs(t, err, ErrBroadcastTooLong)
	assert.Equal(t, 0, counter.total())
}

func TestCreateBroadcast_DraftPrependedLocally(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateBroadcastRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.Broadcast{
			ID:     "b2",
			Name:   req.Name,
			Body:   req.Body,
			Target: req.Target,
			Status: models.BroadcastStatusDraft,
		})
	})
	container.Broadcasts.Replace([]models.Broadcast{{ID: "b1", Status: models.BroadcastStatusCompleted}})

	broadcast, err := container.CreateBroadcast(context.Background(), models.CreateBroadcastRequest{
		Name:   "launch",
		Body:   "hello",
		Target: models.BroadcastTarget{Type: models.TargetLabels, Labels: models.LabelList{"vip"}},
	})
	assert.NoError(t, err)
	assert.Equal(t, models.BroadcastStatusDraft, broadcast.Status)

	list := container.Broadcasts.List()
	assert.Len(t, list, 2)
	assert.Equal(t, "b2", list[0].ID)
}
