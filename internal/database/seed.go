package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data.
// It creates a demo storefront account if no users exist, so the frontend
// works out of the box against a fresh database.
func Seed(db *sql.DB) error {
	// Check if any users exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (name, username, password_hash)
		VALUES ($1, $2, $3)
	`, "Demo Shopper", "demo", string(hash))
	if err != nil {
		return fmt.Errorf("seed insert demo user: %w", err)
	}

	slog.Info("database seeded with demo account",
		"username", "demo",
		"password", "demo123",
	)

	return nil
}
