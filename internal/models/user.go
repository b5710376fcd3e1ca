package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a storefront account. The password hash is never
// serialized; the frontend only ever sees profile fields.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	Pincode      string    `json:"pincode"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
