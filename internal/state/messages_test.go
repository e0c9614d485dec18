package state

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"whatsapp-dashboard/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestMessageStore_MergeDiscardsDuplicateID(t *testing.T) {
	store := NewMessageStore()
	msg := models.Message{ID: "m1", Phone: "123", Timestamp: ts(100)}

	assert.True(t, store.Merge(msg))
	// A message with a durable ID already present is never duplicated by
	// a subsequent poll returning the same ID.
	assert.False(t, store.Merge(msg))
	assert.Equal(t, 1, store.Len("123"))
}

func TestMessageStore_OrderingMonotonicByTimestamp(t *testing.T) {
	store := NewMessageStore()
	store.Merge(models.Message{ID: "m2", Phone: "123", Timestamp: ts(200)})
	store.Merge(models.Message{ID: "m1", Phone: "123", Timestamp: ts(100)})
	store.Merge(models.Message{ID: "m3", Phone: "123", Timestamp: ts(300)})

	list := store.List("123")
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].Timestamp.Before(list[i-1].Timestamp))
	}
}

func TestMessageStore_ConfirmReplacesPendingCopy(t *testing.T) {
	store := NewMessageStore()
	pending := models.NewPendingMessage("123", "hello")
	store.Merge(pending)

	confirmed := models.Message{
		ID:        "srv-1",
		Phone:     "123",
		Direction: models.DirectionOutgoing,
		Content:   "hello",
		Status:    models.MessageStatusSent,
		Timestamp: pending.Timestamp,
	}
	store.Confirm("123", pending.ID, confirmed)

	list := store.List("123")
	assert.Len(t, list, 1)
	assert.Equal(t, "srv-1", list[0].ID)
	assert.Equal(t, models.MessageStatusSent, list[0].Status)
}

func TestSendText_BlankBodyIsNoOp(t *testing.T) {
	container, counter := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for a blank message")
	})

	for _, body := range []string{"", "   ", "\n\t "} {
		_, err := container.SendText(context.Background(), "123", body)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	assert.Equal(t, 0, counter.total())
	assert.Equal(t, 0, container.Messages.Len("123"))
}

func TestSendText_OptimisticInsertThenConfirm(t *testing.T) {
	container, counter := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.SendMessageRequest
		json.NewDecoder(r.Body).Decode(&req)
		json.NewEncoder(w).Encode(models.Message{
			ID:        "srv-1",
			Phone:     req.To,
			Direction: models.DirectionOutgoing,
			Content:   req.Content,
			Status:    models.MessageStatusSent,
		})
	})

	msg, err := container.SendText(context.Background(), "123", "hello")
	assert.NoError(t, err)
	assert.Equal(t, "srv-1", msg.ID)

	list := container.Messages.List("123")
	assert.Len(t, list, 1)
	assert.Equal(t, "srv-1", list[0].ID)
	assert.Equal(t, models.MessageStatusSent, list[0].Status)
	assert.Equal(t, 1, counter.get("POST /api/messages/send"))
}

func TestSendText_FailureMarksLocalCopyFailed(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	})

	_, err := container.SendText(context.Background(), "123", "hello")
	assert.Error(t, err)

	list := container.Messages.List("123")
	assert.Len(t, list, 1)
	assert.True(t, list[0].IsLocal())
	assert.Equal(t, models.MessageStatusFailed, list[0].Status)
}

func TestLoadMessages_ReplacesHistory(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Message{
			{ID: "m2", Phone: "123", Timestamp: ts(200)},
			{ID: "m1", Phone: "123", Timestamp: ts(100)},
		})
	})

	messages, err := container.LoadMessages(context.Background(), "123")
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID) // re-sorted ascending
}
