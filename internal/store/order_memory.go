// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"sync"
	"time"

	"radhakart/internal/models"
)

// MemoryOrderStore is the volatile in-process order ledger. Losing it on
// restart is an acknowledged limitation of the deployment, not a bug;
// production deployments configure the PostgreSQL store instead.
type MemoryOrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewMemoryOrderStore creates an empty in-memory ledger.
func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

// Append records an order. The insert is mutex-guarded so concurrent
// placements cannot lose writes, and ids stay distinct via the shared
// time+sequence generator.
func (s *MemoryOrderStore) Append(ctx context.Context, order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	o := *order
	now := time.Now().UTC()
	o.ID = newOrderID(now)
	o.CreatedAt = now

	s.mu.Lock()
	s.orders = append(s.orders, o)
	s.mu.Unlock()

	return &o, nil
}

// List returns a copy of the entire ledger in insertion order.
func (s *MemoryOrderStore) List(ctx context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// ListByUser returns the orders placed by the given user id.
func (s *MemoryOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
