// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"radhakart/internal/models"
)

// PGUserStore persists accounts in PostgreSQL.
type PGUserStore struct {
	db *sql.DB
}

// NewPGUserStore creates a PostgreSQL-backed user store.
func NewPGUserStore(db *sql.DB) *PGUserStore {
	return &PGUserStore{db: db}
}

const userColumns = `id, name, address, city, state, pincode, phone, email, username, password_hash, created_at`

// Create inserts a new account with a bcrypt-hashed password. The unique
// index on username turns a duplicate into ErrUsernameTaken.
func (s *PGUserStore) Create(ctx context.Context, user *models.User, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{}
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (name, address, city, state, pincode, phone, email, username, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+userColumns,
		user.Name, user.Address, user.City, user.State, user.Pincode,
		user.Phone, user.Email, user.Username, string(hash),
	).Scan(
		&u.ID, &u.Name, &u.Address, &u.City, &u.State, &u.Pincode,
		&u.Phone, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// FindByUsername retrieves an account by username. Returns nil if not found.
func (s *PGUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+` FROM users WHERE username = $1
	`, username).Scan(
		&u.ID, &u.Name, &u.Address, &u.City, &u.State, &u.Pincode,
		&u.Phone, &u.Email, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

// Authenticate verifies a username/password pair.
func (s *PGUserStore) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
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
