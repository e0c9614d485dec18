package state

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"whatsapp-dashboard/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestSaveCustomer_OverwritesOnSuccessOnly(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		var update models.CustomerUpdate
		json.NewDecoder(r.Body).Decode(&update)
		json.NewEncoder(w).Encode(models.Customer{Phone: "123", Name: update.Name})
	})
	container.Customers.Replace([]models.Customer{{Phone: "123", Name: "Ana"}})

	customer, err := container.SaveCustomer(context.Background(), "123", models.CustomerUpdate{Name: "Ana Silva"})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Silva", customer.Name)

	local, _ := container.Customers.Get("123")
	assert.Equal(t, "Ana Silva", local.Name)
}

func TestSaveCustomer_FailureLeavesLocalUntouched(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	})
	container.Customers.Replace([]models.Customer{{Phone: "123", Name: "Ana"}})

	_, err := container.SaveCustomer(context.Background(), "123", models.CustomerUpdate{Name: "Ana Silva"})
	assert.Error(t, err)

	local, _ := container.Customers.Get("123")
	assert.Equal(t, "Ana", local.Name)
}

func TestGetCustomer_LocalHitSkipsBackend(t *testing.T) {
	container, counter := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for a cached customer")
	})
	container.Customers.Replace([]models.Customer{{Phone: "123", Name: "Ana"}})

	customer, err := container.GetCustomer(context.Background(), "123")
	assert.NoError(t, err)
	assert.Equal(t, "Ana", customer.Name)
	assert.Equal(t, 0, counter.total())
}

func TestUpdateOrder_UpsertsConfirmedCopy(t *testing.T) {
	container, _ := newTestContainer(t, func(w http.ResponseWriter, r *http.Request) {
		var update models.OrderUpdate
		json.NewDecoder(r.Body).Decode(&update)
		json.NewEncoder(w).Encode(models.Order{ID: "o1", Status: *update.Status})
	})
	container.Orders.Replace([]models.Order{{ID: "o1", Status: models.OrderStatusPending}})

	status := models.OrderStatusShipped
	order, err := container.UpdateOrder(context.Background(), "o1", models.OrderUpdate{Status: &status})
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	local, _ := container.Orders.Get("o1")
	assert.Equal(t, models.OrderStatusShipped, local.Status)
	assert.Equal(t, 1, len(container.Orders.List()))
}
