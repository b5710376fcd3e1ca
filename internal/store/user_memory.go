// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"radhakart/internal/models"
)

// MemoryUserStore keeps accounts in process memory. It is the default when
// no database is configured and the backing store for handler tests.
// Accounts are lost on restart.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]models.User // keyed by username
}

// NewMemoryUserStore creates an empty in-memory user store.
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

// Create stores a new account with a bcrypt-hashed password.
func (s *MemoryUserStore) Create(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.Username]; exists {
		return nil, ErrUsernameTaken
	}

	u := *user
	u.ID = uuid.New()
	u.PasswordHash = string(hash)
	u.CreatedAt = time.Now().UTC()
	s.users[u.Username] = u

	return &u, nil
}

// FindByUsername retrieves an account by username. Returns nil if not found.
func (s *MemoryUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[username]
	if !exists {
		return nil, nil
	}
	return &u, nil
}

// Authenticate verifies a username/password pair.
func (s *MemoryUserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	u, err := s.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}
	return u, nil
}
