// Package store provides account and order persistence behind small
// interfaces so handlers can be wired to an in-memory ledger or to
// PostgreSQL without caring which.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"radhakart/internal/models"
)

// Sentinel errors for the account/order taxonomy. Handlers translate these
// to HTTP status codes at the boundary.
var (
	ErrUsernameTaken = errors.New("username already taken")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
	ErrEmptyOrder    = errors.New("order has no items")
)

// UserStore manages storefront accounts.
type UserStore interface {
	// Create stores a new account with a bcrypt-hashed password. Returns
	// ErrUsernameTaken when the username is already present.
	Create(ctx context.Context, user *models.User, password string) (*models.User, error)

	// FindByUsername retrieves an account. Returns nil, nil if absent.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// Authenticate verifies a credential. Returns ErrUserNotFound for an
	// unknown username and ErrWrongPassword for a hash mismatch.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
}

// OrderStore is the order ledger: append, list, filter.
type OrderStore interface {
	// Append records an order, assigning its id and creation timestamp.
	// Returns ErrEmptyOrder when the item list is empty.
	Append(ctx context.Context, order *models.Order) (*models.Order, error)

	// List returns the entire ledger in insertion order.
	List(ctx context.Context) ([]models.Order, error)

	// ListByUser returns the orders whose user id matches exactly.
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
}

// orderSeq disambiguates orders created within the same millisecond.
var orderSeq atomic.Uint64

// newOrderID returns a time-based order id, unique under concurrent
// placements thanks to the atomic sequence suffix.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%04d", now.UnixMilli(), orderSeq.Add(1)%10000)
}
