package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/yichun-tseng/snackshop/models"
	"github.com/yichun-tseng/snackshop/store"
)

// CreateOrder handles order submission from customer terminals and the staff
// manual-order screen alike.
func (a *API) CreateOrder(w http.ResponseWriter, r *http.Request) {
	type Input struct {
		TableNumber string             `json:"tableNumber"`
		Items       []models.OrderItem `json:"items"`
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	order, err := a.Sync.CreateOrder(r.Context(), input.TableNumber, input.Items)
	if err != nil {
		var writeErr *store.WriteError
		if errors.As(err, &writeErr) {
			http.Error(w, "order could not be stored", http.StatusBadGateway)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(order)
}

// ListOrders returns the current snapshot together with the connectivity
// flag. Orders created moments ago may not be in it yet; the snapshot only
// changes when the store broadcasts.
func (a *API) ListOrders(w http.ResponseWriter, r *http.Request) {
	type Output struct {
		Orders    []models.Order `json:"orders"`
		Connected bool           `json:"connected"`
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Output{
		Orders:    a.Sync.Orders(),
		Connected: a.Sync.Connected(),
	})
}

// UpdateStatus applies a kitchen transition to one order.
func (a *API) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	type Input struct {
		Status models.Status `json:"status"`
	}

	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := a.Machine.Advance(r.Context(), orderID, input.Status)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, models.ErrUnknownOrder):
		http.Error(w, "order not found", http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, "status update failed", http.StatusBadGateway)
	}
}
