// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"radhakart/internal/models"
	"radhakart/internal/store"
)

// Orders groups the order placement and listing handlers.
type Orders struct {
	orders     store.OrderStore
	demoUserID string
}

// NewOrders creates the orders handler group. demoUserID is the anonymous
// session identifier: it is attached to orders placed without a user and,
// when queried, matches the entire ledger.
func NewOrders(orders store.OrderStore, demoUserID string) *Orders {
	return &Orders{orders: orders, demoUserID: demoUserID}
}

// Place records an order. Orders without a user id fall back to the demo
// identifier so anonymous checkouts still land in the ledger.
func (h *Orders) Place(w http.ResponseWriter, r *http.Request) {
	var order models.Order
	if err := decodeJSON(r, &order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if order.UserID == "" {
		order.UserID = h.demoUserID
	}

	created, err := h.orders.Append(r.Context(), &order)
	if err != nil {
		if errors.Is(err, store.ErrEmptyOrder) {
			writeError(w, http.StatusBadRequest, "Order must contain at least one item")
			return
		}
		slog.Error("place order failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to place order")
		return
	}

	slog.Info("order placed", "order_id", created.ID, "user_id", created.UserID, "total", created.Total)
	writeJSON(w, http.StatusOK, created)
}

// List returns the whole ledger. The endpoint carries no authorization
// check, matching the storefront's admin view.
func (h *Orders) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		slog.Error("list orders failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// ListForUser returns the orders of one user. The demo user id widens the
// filter to the entire ledger so anonymous/demo sessions see every order.
func (h *Orders) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "Missing user id")
		return
	}

	var (
		orders []models.Order
		err    error
	)
	if userID == h.demoUserID {
		orders, err = h.orders.List(r.Context())
	} else {
		orders, err = h.orders.ListByUser(r.Context(), userID)
	}
	if err != nil {
		slog.Error("list orders for user failed", "error", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
