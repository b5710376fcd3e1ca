// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"radhakart/internal/models"
)

// PGOrderStore persists the order ledger in PostgreSQL, the durable
// production alternative to the in-memory ledger. Items and image
// references are stored as JSONB.
type PGOrderStore struct {
	db *sql.DB
}

// NewPGOrderStore creates a PostgreSQL-backed order store.
func NewPGOrderStore(db *sql.DB) *PGOrderStore {
	return &PGOrderStore{db: db}
}

// Append records an order, assigning its id and creation timestamp.
func (s *PGOrderStore) Append(ctx context.Context, order *models.Order) (*models.Order, error) {
	if len(order.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	images, err := json.Marshal(order.Images)
	if err != nil {
		return nil, fmt.Errorf("marshal order images: %w", err)
	}

	o := *order
	now := time.Now().UTC()
	o.ID = newOrderID(now)
	o.CreatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, name, address, city, state, pincode, phone,
		                    items, total, payment_method, cash_collected, images, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, o.ID, o.UserID, o.Name, o.Address, o.City, o.State, o.Pincode, o.Phone,
		items, o.Total, o.PaymentMethod, o.CashCollected, images, o.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("append order: %w", err)
	}
	return &o, nil
}

const orderColumns = `id, user_id, name, address, city, state, pincode, phone,
       items, total, payment_method, cash_collected, images, created_at`

// List returns the entire ledger, oldest first.
func (s *PGOrderStore) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// ListByUser returns the orders placed by the given user id, oldest first.
func (s *PGOrderStore) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders by user: %w", err)
	}
	defer rows.Close()
	return scanOrders(rows)
}

// scanOrders reads order rows, decoding the JSONB columns.
func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		var o models.Order
		var items, images []byte
		err := rows.Scan(
			&o.ID, &o.UserID, &o.Name, &o.Address, &o.City, &o.State, &o.Pincode, &o.Phone,
			&items, &o.Total, &o.PaymentMethod, &o.CashCollected, &images, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
		if len(images) > 0 {
			if err := json.Unmarshal(images, &o.Images); err != nil {
				return nil, fmt.Errorf("unmarshal order images: %w", err)
			}
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
